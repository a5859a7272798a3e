package repositories

import (
	"address-book/domain"
	"encoding/json"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestDocument_KeepsInsertionOrder(t *testing.T) {
	req := require.New(t)
	doc := NewDocument()
	doc.Set("Zoe", StoredContact{Phones: []string{"1111111111"}})
	doc.Set("Adam", StoredContact{Phones: []string{"2222222222"}, Birthday: lo.ToPtr("01-01-1990")})
	doc.Set("Mia", StoredContact{Phones: []string{}})

	// Overwriting keeps the position
	doc.Set("Zoe", StoredContact{Phones: []string{"3333333333"}})

	data, err := json.Marshal(doc)
	req.NoError(err)
	req.JSONEq(`{
		"Zoe": {"phones": ["3333333333"], "birthday": null},
		"Adam": {"phones": ["2222222222"], "birthday": "01-01-1990"},
		"Mia": {"phones": [], "birthday": null}
	}`, string(data))

	decoded := NewDocument()
	req.NoError(json.Unmarshal(data, decoded))
	req.Equal([]string{"Zoe", "Adam", "Mia"}, decoded.Names())

	contact, ok := decoded.Get("Adam")
	req.True(ok)
	req.Equal("01-01-1990", lo.FromPtr(contact.Birthday))

	req.True(decoded.Delete("Adam"))
	req.False(decoded.Delete("Adam"))
	req.Equal([]string{"Zoe", "Mia"}, decoded.Names())
	req.Equal(2, decoded.Len())
}

func TestDocument_UnmarshalRejectsNonObjects(t *testing.T) {
	for _, input := range []string{`[]`, `"John"`, `{"John": 12}`, `{"John": {"phones": []}`, `{} {}`} {
		t.Run(input, func(t *testing.T) {
			require.Error(t, json.Unmarshal([]byte(input), NewDocument()))
		})
	}
}

func TestRecordConversion_RoundTrip(t *testing.T) {
	req := require.New(t)
	record, err := domain.NewRecord("John", "30-05-1967")
	req.NoError(err)
	_, err = record.AddPhone("1234567890")
	req.NoError(err)
	_, err = record.AddPhone("5555555555")
	req.NoError(err)

	stored := FromRecord(record)
	req.Equal([]string{"1234567890", "5555555555"}, stored.Phones)
	req.Equal("30-05-1967", lo.FromPtr(stored.Birthday))

	rebuilt, err := ToRecord("John", stored)
	req.NoError(err)
	req.Equal(record, rebuilt)

	noBirthday, err := domain.NewRecord("Jane", "")
	req.NoError(err)
	req.Nil(FromRecord(noBirthday).Birthday)
	req.NotNil(FromRecord(noBirthday).Phones)
}
