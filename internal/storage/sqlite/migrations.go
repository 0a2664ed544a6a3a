package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Staff tables reference both shifts and employees; deleting either side
// removes the staff rows.
const schema = `
CREATE TABLE IF NOT EXISTS employees (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    role TEXT NOT NULL CHECK (role IN ('bartender', 'expo')),
    color TEXT NOT NULL,
    phone TEXT,
    payment_account TEXT,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS shifts (
    id TEXT PRIMARY KEY,
    date TEXT NOT NULL UNIQUE,
    week INTEGER NOT NULL,
    cash_tips REAL NOT NULL DEFAULT 0,
    credit_tips REAL NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS shift_bartenders (
    shift_id TEXT NOT NULL,
    employee_id TEXT NOT NULL,
    hours REAL NOT NULL DEFAULT 0,
    PRIMARY KEY (shift_id, employee_id),
    FOREIGN KEY (shift_id) REFERENCES shifts(id) ON DELETE CASCADE,
    FOREIGN KEY (employee_id) REFERENCES employees(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS shift_expos (
    shift_id TEXT NOT NULL,
    employee_id TEXT NOT NULL,
    PRIMARY KEY (shift_id, employee_id),
    FOREIGN KEY (shift_id) REFERENCES shifts(id) ON DELETE CASCADE,
    FOREIGN KEY (employee_id) REFERENCES employees(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_shifts_week ON shifts(week);
CREATE INDEX IF NOT EXISTS idx_employees_name ON employees(name);
CREATE INDEX IF NOT EXISTS idx_shift_bartenders_employee_id ON shift_bartenders(employee_id);
CREATE INDEX IF NOT EXISTS idx_shift_expos_employee_id ON shift_expos(employee_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
