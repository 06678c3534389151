package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS expenses (
    position             INTEGER PRIMARY KEY,
    id                   INTEGER NOT NULL UNIQUE,
    date                 TEXT NOT NULL,
    description          TEXT NOT NULL,
    amount               TEXT NOT NULL,
    category             TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS budgets (
    year                 INTEGER NOT NULL,
    month                INTEGER NOT NULL,
    amount               TEXT NOT NULL,
    PRIMARY KEY (year, month)
);

CREATE TABLE IF NOT EXISTS meta (
    key                  TEXT PRIMARY KEY,
    value                TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date);
CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category);
`
