package listview

import (
	"context"
	"errors"
)

var (
	// ErrDeleteDialogOpen is returned when a list interaction is attempted
	// while a delete candidate is staged. The confirmation dialog is a
	// blocking gate.
	ErrDeleteDialogOpen = errors.New("delete confirmation is open")

	// ErrNothingStaged is returned by ConfirmDelete without a prior StageDelete.
	ErrNothingStaged = errors.New("no delete candidate staged")
)

// View is one rendered page of a list.
type View[T any] struct {
	Items     []T
	Page      int
	TotalPage int
	TotalData int
}

// Controller holds the state of one list page: the loaded collection, the
// active criteria, the current page, and the staged delete candidate. It
// follows the admin-page synchronization contract: load the whole collection
// once, recompute filter+paginate locally on every change, and reload from
// the source after any confirmed mutation.
type Controller[T any] struct {
	loader   func(context.Context) ([]T, error)
	pageSize int

	items    []T
	criteria Criteria[T]
	page     int
	errText  string

	staged *T
}

func NewController[T any](loader func(context.Context) ([]T, error), pageSize int) *Controller[T] {
	return &Controller[T]{
		loader:   loader,
		pageSize: pageSize,
		page:     1,
	}
}

// Load fetches the full collection. On failure the list becomes empty and
// the error text is retained for display; the controller stays usable.
func (c *Controller[T]) Load(ctx context.Context) error {
	if c.staged != nil {
		return ErrDeleteDialogOpen
	}

	items, err := c.loader(ctx)
	if err != nil {
		c.items = nil
		c.errText = err.Error()

		return err
	}

	c.items = items
	c.errText = ""

	return nil
}

// SetCriteria replaces the active filters and resets to the first page.
func (c *Controller[T]) SetCriteria(criteria Criteria[T]) error {
	if c.staged != nil {
		return ErrDeleteDialogOpen
	}

	c.criteria = criteria
	c.page = 1

	return nil
}

func (c *Controller[T]) SetPage(page int) error {
	if c.staged != nil {
		return ErrDeleteDialogOpen
	}

	c.page = page

	return nil
}

// Error returns the message from the last failed load or mutation. It is
// cleared by the next successful action.
func (c *Controller[T]) Error() string {
	return c.errText
}

// View recomputes the filtered, paginated page from the in-memory
// collection. Cheap enough to run on every keystroke for collections of
// this size.
func (c *Controller[T]) View() View[T] {
	filtered := Apply(c.items, c.criteria)

	page := c.page
	if total := TotalPages(len(filtered), c.pageSize); page > total {
		page = total
	}

	if page < 1 {
		page = 1
	}

	return View[T]{
		Items:     Paginate(filtered, page, c.pageSize),
		Page:      page,
		TotalPage: TotalPages(len(filtered), c.pageSize),
		TotalData: len(filtered),
	}
}

// StageDelete stages a candidate for confirmation and blocks every other
// list interaction until the dialog is resolved.
func (c *Controller[T]) StageDelete(item T) error {
	if c.staged != nil {
		return ErrDeleteDialogOpen
	}

	c.staged = &item

	return nil
}

// Staged returns the candidate awaiting confirmation, if any.
func (c *Controller[T]) Staged() (T, bool) {
	if c.staged == nil {
		var zero T

		return zero, false
	}

	return *c.staged, true
}

// CancelDelete clears the staged candidate without touching the source.
func (c *Controller[T]) CancelDelete() {
	c.staged = nil
}

// ConfirmDelete runs the delete call for the staged candidate. Only a
// successful round-trip clears the candidate and reloads the collection; on
// failure the dialog stays open with the error so the delete can be retried.
func (c *Controller[T]) ConfirmDelete(ctx context.Context, del func(context.Context, T) error) error {
	if c.staged == nil {
		return ErrNothingStaged
	}

	if err := del(ctx, *c.staged); err != nil {
		c.errText = err.Error()

		return err
	}

	c.staged = nil
	c.errText = ""

	return c.Load(ctx)
}
