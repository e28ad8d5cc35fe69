package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jcastano/gestion-api/internal/application/dto"
	"github.com/jcastano/gestion-api/internal/domain"
	"github.com/jcastano/gestion-api/internal/domain/entity"
	"github.com/jcastano/gestion-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una misma transacción.
// La creación de facturas lo usa para que la resolución del cliente y el
// INSERT sean un solo paso atómico.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		clienteRepo repository.ClienteRepository,
		facturaRepo repository.FacturaRepository,
	) error) error
}

// FacturaUseCase operaciones sobre facturas: listado filtrado, detalle por
// dispositivo, creación transaccional, actualización y borrado.
type FacturaUseCase struct {
	facturas  repository.FacturaRepository
	clientes  repository.ClienteRepository
	productos repository.ProductoRepository
	tx        TxRunner
}

// NewFacturaUseCase construye el caso de uso.
func NewFacturaUseCase(
	facturas repository.FacturaRepository,
	clientes repository.ClienteRepository,
	productos repository.ProductoRepository,
	tx TxRunner,
) *FacturaUseCase {
	return &FacturaUseCase{facturas: facturas, clientes: clientes, productos: productos, tx: tx}
}

// List devuelve las facturas que cumplen el filtro, más recientes primero.
func (uc *FacturaUseCase) List(ctx context.Context, req dto.FacturaFilterRequest) ([]dto.FacturaResumenResponse, error) {
	filter, err := ParseFacturaFilter(req)
	if err != nil {
		return nil, err
	}
	facturas, err := uc.facturas.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FacturaResumenResponse, 0, len(facturas))
	for _, f := range facturas {
		out = append(out, dto.FacturaResumenResponse{
			ID:       f.ID,
			Cliente:  f.Cliente,
			Fecha:    f.Fecha.Format(fechaLayout),
			Total:    f.Total,
			Products: f.Products,
		})
	}
	return out, nil
}

// GetDetalleDesktop arma la variante escritorio del detalle: solo la factura.
func (uc *FacturaUseCase) GetDetalleDesktop(ctx context.Context, id int) (*dto.FacturaDetalleDesktopResponse, error) {
	detalle, err := uc.getDetalle(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.FacturaDetalleDesktopResponse{
		Invoice:    *detalle,
		DeviceType: "desktop",
	}, nil
}

// GetDetalleMobile arma la variante móvil: detalle más los catálogos
// completos de productos y clientes para generar facturas desde el dispositivo.
func (uc *FacturaUseCase) GetDetalleMobile(ctx context.Context, id int) (*dto.FacturaDetalleMobileResponse, error) {
	detalle, err := uc.getDetalle(ctx, id)
	if err != nil {
		return nil, err
	}

	productos, err := uc.productos.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catálogo de productos: %w", err)
	}
	clientes, err := uc.clientes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catálogo de clientes: %w", err)
	}

	resp := &dto.FacturaDetalleMobileResponse{
		Invoice:           *detalle,
		AvailableProducts: make([]dto.ProductoResponse, 0, len(productos)),
		AvailableClients:  make([]dto.ClienteResponse, 0, len(clientes)),
		DeviceType:        "mobile",
	}
	for _, p := range productos {
		resp.AvailableProducts = append(resp.AvailableProducts, toProductoResponse(p))
	}
	for _, c := range clientes {
		resp.AvailableClients = append(resp.AvailableClients, toClienteResponse(c))
	}
	return resp, nil
}

func (uc *FacturaUseCase) getDetalle(ctx context.Context, id int) (*dto.FacturaDetalleDTO, error) {
	f, err := uc.facturas.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	lineas, err := uc.facturas.ListLineas(ctx, id)
	if err != nil {
		return nil, err
	}

	detalle := &dto.FacturaDetalleDTO{
		ID:        f.ID,
		Cliente:   f.Cliente,
		IDCliente: f.ClienteID,
		Fecha:     f.Fecha.Format(fechaLayout),
		Total:     f.Total,
		Products:  make([]dto.LineaFacturaDTO, 0, len(lineas)),
	}
	for _, l := range lineas {
		detalle.Products = append(detalle.Products, dto.LineaFacturaDTO{
			ID:       l.ProductoID,
			Name:     l.Nombre,
			Quantity: l.Cantidad,
			Price:    l.Precio,
			Total:    l.Total,
		})
	}
	return detalle, nil
}

// Create resuelve el cliente por nombre exacto e inserta la factura dentro
// de una misma transacción. domain.ErrNotFound si el nombre no resuelve;
// domain.ErrInvalidInput si falta fecha o total tras la resolución.
func (uc *FacturaUseCase) Create(ctx context.Context, in dto.CreateFacturaRequest) (*dto.CreateFacturaResponse, error) {
	var creada dto.FacturaCreadaDTO

	err := uc.tx.Run(ctx, func(
		clienteRepo repository.ClienteRepository,
		facturaRepo repository.FacturaRepository,
	) error {
		cliente, err := clienteRepo.GetByNombre(ctx, in.Cliente)
		if err != nil {
			return err
		}
		if cliente == nil {
			return fmt.Errorf("%w: cliente con nombre %q", domain.ErrNotFound, in.Cliente)
		}

		// La validación va después de resolver el cliente: si el nombre no
		// existe y además faltan campos, gana el 404.
		if in.Fecha == "" || in.Total == nil {
			return fmt.Errorf("%w: faltan datos obligatorios", domain.ErrInvalidInput)
		}
		fecha, err := time.Parse(fechaLayout, in.Fecha)
		if err != nil {
			return fmt.Errorf("%w: fecha inválida: %s", domain.ErrInvalidInput, in.Fecha)
		}

		clienteID := cliente.ID
		id, err := facturaRepo.Create(ctx, &entity.Factura{
			ClienteID: &clienteID,
			Products:  in.Products,
			Fecha:     fecha,
			Total:     *in.Total,
		})
		if err != nil {
			return err
		}

		creada = dto.FacturaCreadaDTO{
			IDFactura: id,
			IDCliente: clienteID,
			Fecha:     in.Fecha,
			Total:     *in.Total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreateFacturaResponse{
		Message: "Factura creada correctamente",
		Factura: creada,
	}, nil
}

// Update actualiza cliente, fecha y total de la factura.
func (uc *FacturaUseCase) Update(ctx context.Context, id int, in dto.UpdateFacturaRequest) error {
	if in.Fecha == "" || in.Total == nil {
		return fmt.Errorf("%w: faltan datos obligatorios", domain.ErrInvalidInput)
	}
	fecha, err := time.Parse(fechaLayout, in.Fecha)
	if err != nil {
		return fmt.Errorf("%w: fecha inválida: %s", domain.ErrInvalidInput, in.Fecha)
	}
	return uc.facturas.Update(ctx, &entity.Factura{
		ID:        id,
		ClienteID: in.IDCliente,
		Fecha:     fecha,
		Total:     *in.Total,
	})
}

// Delete elimina la factura; sus movimientos caen en cascada.
func (uc *FacturaUseCase) Delete(ctx context.Context, id int) error {
	return uc.facturas.Delete(ctx, id)
}
