package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jmfarias/traslados-api/internal/application/dto"
	"github.com/jmfarias/traslados-api/internal/domain"
	"github.com/jmfarias/traslados-api/internal/domain/entity"
	"github.com/jmfarias/traslados-api/internal/domain/repository"
)

// RateUseCase CRUD de tarifas de transporte más el lookup que alimenta el
// campo de flete sugerido al armar un paquete.
type RateUseCase struct {
	repo repository.RateRepository
}

// NewRateUseCase construye el caso de uso.
func NewRateUseCase(repo repository.RateRepository) *RateUseCase {
	return &RateUseCase{repo: repo}
}

// Create da de alta una tarifa. (transporte, destino) es único.
func (uc *RateUseCase) Create(in dto.SaveRateRequest) (*dto.RateResponse, error) {
	if in.Courier == "" || in.Destination == "" || in.BaseRate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.Lookup(in.Courier, in.Destination)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	rate := &entity.ShippingRate{
		ID:          uuid.New().String(),
		Courier:     in.Courier,
		Destination: in.Destination,
		BaseRate:    in.BaseRate,
		PerKgRate:   in.PerKgRate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(rate); err != nil {
		return nil, err
	}
	return toRateResponse(rate), nil
}

// Lookup busca la tarifa para (transporte, destino) y calcula el flete
// sugerido para el peso dado. La sugerencia nunca es autoritativa.
func (uc *RateUseCase) Lookup(courier, destination string, weightKg decimal.Decimal) (*dto.RateLookupResponse, error) {
	if courier == "" || destination == "" {
		return nil, domain.ErrInvalidInput
	}
	rate, err := uc.repo.Lookup(courier, destination)
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.RateLookupResponse{
		RateResponse:  *toRateResponse(rate),
		SuggestedCost: rate.SuggestedCost(weightKg),
	}, nil
}

// Update modifica una tarifa existente.
func (uc *RateUseCase) Update(id string, in dto.SaveRateRequest) (*dto.RateResponse, error) {
	if in.BaseRate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	rate, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, domain.ErrNotFound
	}
	if in.Courier != "" {
		rate.Courier = in.Courier
	}
	if in.Destination != "" {
		rate.Destination = in.Destination
	}
	rate.BaseRate = in.BaseRate
	rate.PerKgRate = in.PerKgRate
	rate.UpdatedAt = time.Now()
	if err := uc.repo.Update(rate); err != nil {
		return nil, err
	}
	return toRateResponse(rate), nil
}

// Delete elimina una tarifa.
func (uc *RateUseCase) Delete(id string) error {
	rate, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if rate == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List devuelve todas las tarifas.
func (uc *RateUseCase) List() ([]dto.RateResponse, error) {
	rates, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RateResponse, 0, len(rates))
	for _, r := range rates {
		out = append(out, *toRateResponse(r))
	}
	return out, nil
}

func toRateResponse(r *entity.ShippingRate) *dto.RateResponse {
	return &dto.RateResponse{
		ID:          r.ID,
		Courier:     r.Courier,
		Destination: r.Destination,
		BaseRate:    r.BaseRate,
		PerKgRate:   r.PerKgRate,
	}
}
