package usecase

import (
	"github.com/DRSN-tech/terranova/internal/domain"
	"github.com/DRSN-tech/terranova/pkg/e"
	"github.com/DRSN-tech/terranova/pkg/logger"
)

// Имена полей формы кастомизации.
const (
	FieldGrowingMedium   = "growing_medium"
	FieldDrainageLayer   = "drainage_layer"
	FieldHardscapeStones = "hardscape_stones"
	FieldPlants          = "plants"
	FieldCare            = "care"
	FieldAccessories     = "accessories"
)

type singleField struct {
	name  string
	value string
}

type multiField struct {
	name   string
	values []string
}

// AssembleBuild собирает черновик из формы.
// Обязательные поля разбираются строго: отсутствие или ошибка в любом из них
// отменяет всю сборку. Необязательные значения с ошибкой пропускаются по одному.
func AssembleBuild(req *SubmitBuildReq, log logger.Logger) (domain.CustomBuildDraft, error) {
	const op = "AssembleBuild"

	singles := []singleField{
		{FieldGrowingMedium, req.GrowingMedium},
		{FieldDrainageLayer, req.DrainageLayer},
		{FieldHardscapeStones, req.HardscapeStones},
	}
	multis := []multiField{
		{FieldPlants, req.Plants},
		{FieldCare, req.Care},
		{FieldAccessories, req.Accessories},
	}

	components := make([]domain.Component, 0, len(singles))
	var seed string

	for i, f := range singles {
		if f.value == "" {
			return domain.CustomBuildDraft{}, e.Wrap(op, e.Wrap(f.name, e.ErrMissingField))
		}

		o, err := domain.ParseOption(f.value)
		if err != nil {
			return domain.CustomBuildDraft{}, e.Wrap(op, e.Wrap(f.name, err))
		}

		if i == 0 {
			seed = o.Name
		}
		components = append(components, domain.Component{Name: o.Name, Price: o.Price})
	}

	for _, f := range multis {
		for _, v := range f.values {
			o, err := domain.ParseOption(v)
			if err != nil {
				log.Warnf("skipping %s value: %v", f.name, err)
				continue
			}
			components = append(components, domain.Component{Name: o.Name, Price: o.Price})
		}
	}

	return domain.NewCustomBuildDraft(seed, components), nil
}
