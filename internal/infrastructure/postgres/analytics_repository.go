package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jcastano/gestion-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// umbral de stock bajo: menos de 10 unidades.
const stockBajoUmbral = 10

// mesActual devuelve el rango [inicio, fin) del mes calendario en curso.
// El límite se calcula en Go y viaja como parámetro tipado; así la consulta
// es un rango simple sobre fecha en lugar de EXTRACT sobre cada fila.
func mesActual(now time.Time) (time.Time, time.Time) {
	inicio := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return inicio, inicio.AddDate(0, 1, 0)
}

// inicioVentanaMeses devuelve el primer día del mes calendario `meses-1`
// meses atrás: la ventana cubre `meses` meses completos incluido el actual.
func inicioVentanaMeses(now time.Time, meses int) time.Time {
	inicio := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return inicio.AddDate(0, -(meses - 1), 0)
}

// GetResumen ejecuta la batería de escalares del dashboard: conteos totales,
// suma de ventas, ventas del mes calendario en curso y productos con stock bajo.
func (r *AnalyticsRepo) GetResumen(ctx context.Context) (*repository.Resumen, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM clientes)                                   AS total_clientes,
	    (SELECT COUNT(*) FROM productos)                                  AS total_productos,
	    (SELECT COUNT(*) FROM facturas)                                   AS total_facturas,
	    (SELECT COALESCE(SUM(total), 0) FROM facturas)                    AS total_ventas,
	    (SELECT COALESCE(SUM(total), 0) FROM facturas
	      WHERE fecha >= $2 AND fecha < $3)                               AS ventas_mes,
	    (SELECT COUNT(*) FROM productos WHERE stock < $1)                 AS stock_bajo`

	inicioMes, finMes := mesActual(time.Now())

	var res repository.Resumen
	err := r.pool.QueryRow(ctx, query, stockBajoUmbral, inicioMes, finMes).Scan(
		&res.TotalClientes,
		&res.TotalProductos,
		&res.TotalFacturas,
		&res.TotalVentas,
		&res.VentasMesActual,
		&res.ProductosStockBajo,
	)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetResumen: %w", err)
	}
	return &res, nil
}

// GetTopProductos devuelve los `limit` productos con mayor cantidad vendida.
// LEFT JOIN para incluir en cero los productos sin movimientos; empates se
// resuelven por nombre para que el orden sea estable.
func (r *AnalyticsRepo) GetTopProductos(ctx context.Context, limit int) ([]repository.TopProducto, error) {
	const query = `
	SELECT
	    p.id_producto,
	    p.nombre,
	    COALESCE(SUM(m.cantidad), 0) AS total_vendido
	FROM productos p
	LEFT JOIN movimientos m ON p.id_producto = m.id_producto
	GROUP BY p.id_producto, p.nombre
	ORDER BY total_vendido DESC, p.nombre ASC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopProductos: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProducto
	for rows.Next() {
		var row repository.TopProducto
		if err := rows.Scan(&row.ID, &row.Nombre, &row.TotalVendido); err != nil {
			return nil, fmt.Errorf("analytics.GetTopProductos scan: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetTopClientes devuelve los `limit` clientes con mayor total facturado,
// incluyendo en cero a los que no tienen facturas. La unión es por
// id_cliente: unir por nombre mezclaría clientes homónimos.
func (r *AnalyticsRepo) GetTopClientes(ctx context.Context, limit int) ([]repository.TopCliente, error) {
	const query = `
	SELECT
	    c.id_cliente,
	    c.nombre,
	    COUNT(f.id_factura)          AS total_facturas,
	    COALESCE(SUM(f.total), 0)    AS total_gastado
	FROM clientes c
	LEFT JOIN facturas f ON c.id_cliente = f.id_cliente
	GROUP BY c.id_cliente, c.nombre
	ORDER BY total_gastado DESC, c.nombre ASC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopClientes: %w", err)
	}
	defer rows.Close()
	var list []repository.TopCliente
	for rows.Next() {
		var row repository.TopCliente
		if err := rows.Scan(&row.ID, &row.Nombre, &row.TotalFacturas, &row.TotalGastado); err != nil {
			return nil, fmt.Errorf("analytics.GetTopClientes scan: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetVentasPorMes agrupa el total facturado por mes calendario (YYYY-MM) de
// los últimos `meses` meses, en orden ascendente. El corte de la ventana se
// calcula en Go y viaja como parámetro tipado (time.Time).
func (r *AnalyticsRepo) GetVentasPorMes(ctx context.Context, meses int) ([]repository.VentaMensual, error) {
	const query = `
	SELECT
	    TO_CHAR(fecha, 'YYYY-MM')  AS mes,
	    COALESCE(SUM(total), 0)    AS total
	FROM facturas
	WHERE fecha >= $1
	GROUP BY TO_CHAR(fecha, 'YYYY-MM')
	ORDER BY mes ASC`

	rows, err := r.pool.Query(ctx, query, inicioVentanaMeses(time.Now(), meses))
	if err != nil {
		return nil, fmt.Errorf("analytics.GetVentasPorMes: %w", err)
	}
	defer rows.Close()
	var list []repository.VentaMensual
	for rows.Next() {
		var row repository.VentaMensual
		if err := rows.Scan(&row.Mes, &row.Total); err != nil {
			return nil, fmt.Errorf("analytics.GetVentasPorMes scan: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetFacturasRecientes devuelve las últimas `limit` facturas por fecha
// descendente, con el nombre del cliente resuelto vía JOIN.
func (r *AnalyticsRepo) GetFacturasRecientes(ctx context.Context, limit int) ([]repository.FacturaRecienteRow, error) {
	const query = `
	SELECT
	    f.id_factura,
	    COALESCE(c.nombre, 'N/A')   AS cliente,
	    f.total,
	    TO_CHAR(f.fecha, 'YYYY-MM-DD') AS fecha,
	    f.products
	FROM facturas f
	LEFT JOIN clientes c ON f.id_cliente = c.id_cliente
	ORDER BY f.fecha DESC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetFacturasRecientes: %w", err)
	}
	defer rows.Close()
	var list []repository.FacturaRecienteRow
	for rows.Next() {
		var row repository.FacturaRecienteRow
		if err := rows.Scan(&row.ID, &row.Cliente, &row.Total, &row.Fecha, &row.Products); err != nil {
			return nil, fmt.Errorf("analytics.GetFacturasRecientes scan: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
