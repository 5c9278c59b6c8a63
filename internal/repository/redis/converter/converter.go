package converter

import "github.com/DRSN-tech/terranova/internal/domain"

// SessionConverter переводит снимки сессии между доменом и моделью Redis.
type SessionConverter interface {
	ToRedisModel(s domain.Session) *SessionRedisModel
	ToDomain(m *SessionRedisModel) domain.Session
}

type SessionConverterImpl struct{}

func NewSessionConverterImpl() *SessionConverterImpl {
	return &SessionConverterImpl{}
}

func (c *SessionConverterImpl) ToRedisModel(s domain.Session) *SessionRedisModel {
	m := &SessionRedisModel{
		Cart: make([]LineItemRedisModel, len(s.Cart)),
	}
	for i, item := range s.Cart {
		m.Cart[i] = LineItemRedisModel{
			Kind:      string(item.Kind),
			Name:      item.Name,
			Price:     item.UnitPrice,
			Quantity:  item.Quantity,
			ProductID: item.ProductID,
		}
	}

	if s.Draft != nil {
		d := &DraftRedisModel{
			Components:  make([]ComponentRedisModel, len(s.Draft.Components)),
			TotalPrice:  s.Draft.TotalPrice,
			DisplayName: s.Draft.DisplayName,
		}
		for i, comp := range s.Draft.Components {
			d.Components[i] = ComponentRedisModel{Name: comp.Name, Price: comp.Price}
		}
		m.Draft = d
	}

	return m
}

func (c *SessionConverterImpl) ToDomain(m *SessionRedisModel) domain.Session {
	var s domain.Session
	if m == nil {
		return s
	}

	if len(m.Cart) > 0 {
		s.Cart = make(domain.Cart, len(m.Cart))
		for i, item := range m.Cart {
			s.Cart[i] = domain.CartLineItem{
				Kind:      domain.LineItemKind(item.Kind),
				Name:      item.Name,
				UnitPrice: item.Price,
				Quantity:  item.Quantity,
				ProductID: item.ProductID,
			}
		}
	}

	if m.Draft != nil {
		d := domain.CustomBuildDraft{
			Components:  make([]domain.Component, len(m.Draft.Components)),
			TotalPrice:  m.Draft.TotalPrice,
			DisplayName: m.Draft.DisplayName,
		}
		for i, comp := range m.Draft.Components {
			d.Components[i] = domain.Component{Name: comp.Name, Price: comp.Price}
		}
		s.Draft = &d
	}

	return s
}
