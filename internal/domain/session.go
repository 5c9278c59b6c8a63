package domain

// Session — снимок состояния посетителя: корзина и не более одного черновика сборки.
// Снимки неизменяемы: методы возвращают новый Session.
type Session struct {
	Cart  Cart
	Draft *CustomBuildDraft
}

func (s Session) WithCart(c Cart) Session {
	s.Cart = c
	return s
}

// StageDraft кладёт черновик в единственный слот, заменяя предыдущий.
func (s Session) StageDraft(d CustomBuildDraft) Session {
	s.Draft = &d
	return s
}

// TakeDraft извлекает черновик и очищает слот.
// Если черновика нет, возвращает исходный снимок и false.
func (s Session) TakeDraft() (Session, CustomBuildDraft, bool) {
	if s.Draft == nil {
		return s, CustomBuildDraft{}, false
	}

	d := *s.Draft
	s.Draft = nil
	return s, d, true
}
