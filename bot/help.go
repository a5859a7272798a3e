package bot

const helpText = `List of supported commands:
  hello                                   greet the bot
  add <name> <phone> [dd-mm-yyyy]         add a contact, e.g. 'add John 0995057766 30-05-1967'
  change <name> <old_phone> <new_phone>   replace one phone of a contact
  phone <name>                            show a contact
  add-phone <name> <phone>                add another phone to a contact
  remove-phone <name> <phone>             remove a phone from a contact
  add-birthday <name> <dd-mm-yyyy>        set or replace a contact's birthday
  show days to birthday <name>            days left until the contact's next birthday
  search <phrase>                         find contacts by a part of their name or phone
  delete <name>                           delete a contact
  show all [page_size]                    show every contact, page by page
  good bye | close | exit                 stop the bot
  help                                    show this list

Command words are case-insensitive; each part is separated by spaces.
A name is a single word: use an underscore for first and last name, e.g. John_Wick.
A phone consists of exactly 10 digits. Contacts are saved between sessions.`
