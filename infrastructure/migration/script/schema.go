package main

const schema = `
CREATE TABLE IF NOT EXISTS employees (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	department    TEXT NOT NULL DEFAULT 'Outros',
	default_cost  DOUBLE PRECISION NOT NULL DEFAULT 0,
	default_hours DOUBLE PRECISION NOT NULL DEFAULT 160,
	history       JSONB NOT NULL DEFAULT '{}',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS clients (
	id                  TEXT PRIMARY KEY,
	name                TEXT NOT NULL,
	is_active           BOOLEAN NOT NULL DEFAULT TRUE,
	category            TEXT NOT NULL DEFAULT 'Executar',
	default_fee         DOUBLE PRECISION NOT NULL DEFAULT 0,
	history             JSONB NOT NULL DEFAULT '{}',
	one_time_fee        DOUBLE PRECISION NOT NULL DEFAULT 0,
	contract_start_date DATE,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS time_entries (
	id            TEXT PRIMARY KEY,
	employee_id   TEXT,
	client_id     TEXT,
	executor      TEXT NOT NULL,
	workspace     TEXT NOT NULL,
	realized_time TEXT NOT NULL,
	hours         DOUBLE PRECISION NOT NULL,
	entry_date    DATE NOT NULL,
	month_key     VARCHAR(7) NOT NULL
);

CREATE INDEX IF NOT EXISTS time_entries_entry_date_idx ON time_entries (entry_date);

CREATE TABLE IF NOT EXISTS health_inputs (
	client_id  TEXT NOT NULL,
	month_key  VARCHAR(7) NOT NULL,
	answers    JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (client_id, month_key)
);
`
