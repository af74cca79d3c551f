package sourcerepo

import (
	"context"
	"errors"
	"strconv"

	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/source"
	"deliveryscheduler/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// table describes where a source kind lives.
type table struct {
	name            string
	publicReference string
}

func tableOf(kind source.Kind) (table, error) {
	switch kind {
	case source.Standard:
		return table{name: "orders", publicReference: "order_number"}, nil
	case source.CustomFabrication:
		return table{name: "custom_orders", publicReference: "custom_order_id"}, nil
	case source.CustomDesign:
		return table{name: "custom_designs", publicReference: "design_id"}, nil
	default:
		return table{}, kind.Validate()
	}
}

// GormSourceRepository implements ports.SourceRepository using GORM.
type GormSourceRepository struct {
	db *gorm.DB
}

func NewGormSourceRepository(db *gorm.DB) *GormSourceRepository {
	return &GormSourceRepository{db: db}
}

// GetForUpdate locks the source row. Line items of a standard order are read
// after the lock in a separate query.
func (r *GormSourceRepository) GetForUpdate(ctx context.Context, ref source.Ref) (source.Record, error) {
	id, err := parseID(ref)
	if err != nil {
		return nil, err
	}

	locked := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
	switch ref.Kind {
	case source.Standard:
		var dto StandardOrderDTO
		if err = locked.First(&dto, "id = ?", id).Error; err != nil {
			return nil, notFound(err, ref)
		}
		if err = r.db.WithContext(ctx).Where("order_id = ?", id).Order("id").Find(&dto.Items).Error; err != nil {
			return nil, err
		}
		return dto.toRecord(), nil
	case source.CustomFabrication:
		var dto CustomFabricationOrderDTO
		if err = locked.First(&dto, "id = ?", id).Error; err != nil {
			return nil, notFound(err, ref)
		}
		return dto.toRecord(), nil
	default:
		var dto CustomDesignOrderDTO
		if err = locked.First(&dto, "id = ?", id).Error; err != nil {
			return nil, notFound(err, ref)
		}
		return dto.toRecord(), nil
	}
}

func (r *GormSourceRepository) List(ctx context.Context, kind source.Kind) ([]source.Record, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx).Order("id")
	switch kind {
	case source.Standard:
		var dtos []StandardOrderDTO
		if err := db.Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).Find(&dtos).Error; err != nil {
			return nil, err
		}
		return toRecords(dtos, StandardOrderDTO.toRecord), nil
	case source.CustomFabrication:
		var dtos []CustomFabricationOrderDTO
		if err := db.Find(&dtos).Error; err != nil {
			return nil, err
		}
		return toRecords(dtos, CustomFabricationOrderDTO.toRecord), nil
	default:
		var dtos []CustomDesignOrderDTO
		if err := db.Find(&dtos).Error; err != nil {
			return nil, err
		}
		return toRecords(dtos, CustomDesignOrderDTO.toRecord), nil
	}
}

func (r *GormSourceRepository) FindByPublicReference(
	ctx context.Context,
	kind source.Kind,
	publicReference string,
) (source.Ref, error) {
	t, err := tableOf(kind)
	if err != nil {
		return source.Ref{}, err
	}

	var ids []int64
	err = r.db.WithContext(ctx).
		Table(t.name).
		Where(t.publicReference+" = ?", publicReference).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return source.Ref{}, err
	}
	if len(ids) == 0 {
		return source.Ref{}, errs.NewObjectNotFoundError(kind.String(), publicReference)
	}

	return source.Ref{Kind: kind, ID: formatID(ids[0])}, nil
}

// UpdateMirror writes delivery_status and delivery_notes, plus delivery_date on
// tables that mirror it. A nil mirror date leaves delivery_date untouched.
func (r *GormSourceRepository) UpdateMirror(ctx context.Context, ref source.Ref, mirror delivery.Mirror) error {
	id, err := parseID(ref)
	if err != nil {
		return err
	}
	if err = mirror.Status.Validate(); err != nil {
		return err
	}
	t, err := tableOf(ref.Kind)
	if err != nil {
		return err
	}

	values := map[string]any{
		"delivery_status": mirror.Status.String(),
		"delivery_notes":  mirror.Notes,
		"updated_at":      gorm.Expr("CURRENT_TIMESTAMP"),
	}
	if ref.Kind.HasDateMirror() && mirror.Date != nil {
		values["delivery_date"] = mirror.Date.String()
	}

	result := r.db.WithContext(ctx).Table(t.name).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(ref.Kind.String(), ref.ID)
	}
	return nil
}

// parseID maps a malformed id onto not found: no row can have it.
func parseID(ref source.Ref) (int64, error) {
	if err := ref.Validate(); err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(ref.ID, 10, 64)
	if err != nil {
		return 0, errs.NewObjectNotFoundError(ref.Kind.String(), ref.ID)
	}
	return id, nil
}

func notFound(err error, ref source.Ref) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(ref.Kind.String(), ref.ID)
	}
	return err
}

func toRecords[T any, R source.Record](dtos []T, convert func(T) R) []source.Record {
	records := make([]source.Record, 0, len(dtos))
	for _, dto := range dtos {
		records = append(records, convert(dto))
	}
	return records
}
