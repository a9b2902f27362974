package domain

const (
	// DefaultPageLimit применяется, когда клиент не указал limit.
	DefaultPageLimit = 10
	// MaxPageLimit — верхняя граница размера страницы.
	MaxPageLimit = 100
)

// Page задаёт параметры постраничной выборки.
type Page struct {
	Limit  int64
	Offset int64
}

// DefaultPage возвращает первую страницу со стандартным размером.
func DefaultPage() Page {
	return Page{Limit: DefaultPageLimit, Offset: 0}
}

// Validate проверяет границы limit и offset.
func (p Page) Validate() []error {
	var errs []error
	if p.Limit < 1 || p.Limit > MaxPageLimit {
		errs = append(errs, ErrLimitOutOfRange)
	}
	if p.Offset < 0 {
		errs = append(errs, ErrOffsetNegative)
	}
	return errs
}

// Window описывает соседние страницы относительно текущих offset/limit.
// nil означает отсутствие страницы в соответствующем направлении.
type Window struct {
	Next     *int64
	Previous *int64
}

// ComputeWindow вычисляет смещения следующей и предыдущей страниц.
// Функция чистая и не зависит от бэкенда хранилища: ей важны только три числа.
func ComputeWindow(offset, limit, totalCount int64) Window {
	var w Window
	if offset+limit < totalCount {
		next := offset + limit
		w.Next = &next
	}
	if offset-limit >= 0 {
		previous := offset - limit
		w.Previous = &previous
	}
	return w
}
