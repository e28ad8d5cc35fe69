package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentencias idempotentes de preparación del esquema. Nunca destructivas:
// solo CREATE ... IF NOT EXISTS. Cualquier fallo aquí debe abortar el
// arranque; el servicio no puede operar contra una base sin preparar.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS clientes (
		id_cliente SERIAL PRIMARY KEY,
		nombre VARCHAR(255) NOT NULL,
		direccion VARCHAR(255) DEFAULT NULL,
		telefono VARCHAR(50) DEFAULT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS productos (
		id_producto SERIAL PRIMARY KEY,
		nombre VARCHAR(255) NOT NULL,
		precio_unitario DECIMAL(10, 2) NOT NULL,
		stock INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS facturas (
		id_factura SERIAL PRIMARY KEY,
		id_cliente INTEGER DEFAULT NULL,
		products INTEGER DEFAULT NULL,
		fecha DATE NOT NULL,
		total DECIMAL(10, 2) NOT NULL,
		CONSTRAINT facturas_ibfk_1 FOREIGN KEY (id_cliente)
			REFERENCES clientes(id_cliente)
			ON DELETE SET NULL
			ON UPDATE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS movimientos (
		id_movimiento SERIAL PRIMARY KEY,
		id_factura INTEGER DEFAULT NULL,
		id_cliente INTEGER DEFAULT NULL,
		id_producto INTEGER DEFAULT NULL,
		cantidad INTEGER NOT NULL,
		precio_unitario_facturado DECIMAL(10, 2) NOT NULL,
		precio_total_linea DECIMAL(10, 2) NOT NULL,
		CONSTRAINT movimientos_ibfk_1 FOREIGN KEY (id_factura)
			REFERENCES facturas(id_factura)
			ON DELETE CASCADE
			ON UPDATE CASCADE,
		CONSTRAINT movimientos_ibfk_2 FOREIGN KEY (id_producto)
			REFERENCES productos(id_producto)
			ON DELETE CASCADE
			ON UPDATE CASCADE,
		CONSTRAINT movimientos_ibfk_3 FOREIGN KEY (id_cliente)
			REFERENCES clientes(id_cliente)
			ON DELETE SET NULL
			ON UPDATE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_facturas_cliente ON facturas(id_cliente)`,
	`CREATE INDEX IF NOT EXISTS idx_movimientos_factura ON movimientos(id_factura)`,
	`CREATE INDEX IF NOT EXISTS idx_movimientos_cliente ON movimientos(id_cliente)`,
	`CREATE INDEX IF NOT EXISTS idx_movimientos_producto ON movimientos(id_producto)`,
}

// EnsureSchema verifica/crea las cuatro tablas y sus índices de soporte.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("preparar esquema: %w", err)
		}
	}
	return nil
}
