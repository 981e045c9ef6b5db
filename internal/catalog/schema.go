package catalog

// A command has one row in each of commands, command_types and command_args
// and any number of command_examples. Only the first types and args rows are
// read back.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS commands (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    name_exe TEXT NOT NULL,
    short_desc TEXT,
    details TEXT
);

CREATE TABLE IF NOT EXISTS command_types (
    command_id INTEGER,
    type TEXT,
    FOREIGN KEY (command_id) REFERENCES commands(id)
);

CREATE TABLE IF NOT EXISTS command_args (
    command_id INTEGER,
    args TEXT,
    FOREIGN KEY (command_id) REFERENCES commands(id)
);

CREATE TABLE IF NOT EXISTS command_examples (
    command_id INTEGER,
    example TEXT,
    FOREIGN KEY (command_id) REFERENCES commands(id)
);
`
