package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var tableDefinitions = map[string][]string{
	"postgres": {
		`CREATE TABLE IF NOT EXISTS students (
	id SERIAL PRIMARY KEY,
	nombres TEXT,
	apellidos TEXT,
	matricula TEXT,
	promedio DOUBLE PRECISION,
	foto_perfil_url TEXT,
	password TEXT
)`,
		`CREATE TABLE IF NOT EXISTS professors (
	id SERIAL PRIMARY KEY,
	numero_empleado BIGINT,
	nombres TEXT,
	apellidos TEXT,
	horas_clase BIGINT
)`,
	},
	"sqlite3": {
		`CREATE TABLE IF NOT EXISTS students (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	nombres TEXT,
	apellidos TEXT,
	matricula TEXT,
	promedio REAL,
	foto_perfil_url TEXT,
	password TEXT
)`,
		`CREATE TABLE IF NOT EXISTS professors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	numero_empleado INTEGER,
	nombres TEXT,
	apellidos TEXT,
	horas_clase INTEGER
)`,
	},
}

// EnsureSchema creates the record tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	statements, ok := tableDefinitions[db.DriverName()]
	if !ok {
		return fmt.Errorf("ensure schema: unsupported driver %q", db.DriverName())
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
