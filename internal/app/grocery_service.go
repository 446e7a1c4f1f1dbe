package app

import (
	"context"

	"fitfuel/internal/domain"
)

// GroceryService encapsulates the shopping list.
type GroceryService struct {
	repo   domain.GroceryRepository
	flags  domain.FlagSetter
	events domain.Notifier
}

// NewGroceryService creates a GroceryService backed by the given repository.
func NewGroceryService(repo domain.GroceryRepository, flags domain.FlagSetter, events domain.Notifier) *GroceryService {
	return &GroceryService{repo: repo, flags: flags, events: events}
}

// GroceryList is the shopping list as shown to the user.
type GroceryList struct {
	Category    *domain.GroceryCategory                         `json:"category"`
	Items       []domain.GroceryItem                            `json:"items"`
	Pending     []domain.GroceryItem                            `json:"pending"`
	Purchased   []domain.GroceryItem                            `json:"purchased"`
	Groups      map[domain.GroceryCategory][]domain.GroceryItem `json:"groups"`
	Unpurchased int                                             `json:"unpurchased"`
}

// ListOptions narrows and shapes a GroceryList.
type ListOptions struct {
	// Category limits the list to one category when non-nil.
	Category *domain.GroceryCategory
	// AllCategories includes empty categories in Groups.
	AllCategories bool
}

func validateGrocery(it domain.GroceryItem) error {
	switch {
	case blank(it.Name):
		return invalid("item name is required")
	case !it.Category.Valid():
		return invalid("unknown grocery category %q", it.Category)
	}
	return nil
}

// Add validates and stores a grocery item.
func (s *GroceryService) Add(ctx context.Context, it domain.GroceryItem) (int64, error) {
	if err := validateGrocery(it); err != nil {
		return 0, err
	}
	it.ID = 0
	return s.repo.InsertGroceryItem(ctx, it)
}

// Update validates and replaces a stored grocery item.
func (s *GroceryService) Update(ctx context.Context, it domain.GroceryItem) error {
	if it.ID <= 0 {
		return invalid("item id is required")
	}
	if err := validateGrocery(it); err != nil {
		return err
	}
	return s.repo.UpdateGroceryItem(ctx, it)
}

// Delete removes a grocery item.
func (s *GroceryService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteGroceryItem(ctx, id)
}

// Get returns a grocery item by ID.
func (s *GroceryService) Get(ctx context.Context, id int64) (*domain.GroceryItem, error) {
	return s.repo.GetGroceryItem(ctx, id)
}

// SetPurchased ticks an item on or off without touching its other fields.
func (s *GroceryService) SetPurchased(ctx context.Context, id int64, purchased bool) error {
	return s.flags.SetFlag(ctx, domain.KindGrocery, id, domain.FlagPurchased, purchased)
}

// ClearPurchased removes every purchased item and reports how many went.
func (s *GroceryService) ClearPurchased(ctx context.Context) (int64, error) {
	return s.repo.DeletePurchasedGroceryItems(ctx)
}

// SetAllPurchased ticks every item on or off and reports how many changed.
func (s *GroceryService) SetAllPurchased(ctx context.Context, purchased bool) (int64, error) {
	return s.repo.SetAllGroceryItemsPurchased(ctx, purchased)
}

// List returns the shopping list shaped by opts. The unpurchased count always
// covers the whole list.
func (s *GroceryService) List(ctx context.Context, opts ListOptions) (GroceryList, error) {
	if opts.Category != nil && !opts.Category.Valid() {
		return GroceryList{}, invalid("unknown grocery category %q", *opts.Category)
	}
	items, err := s.repo.ListGroceryItems(ctx)
	if err != nil {
		return GroceryList{}, err
	}
	shown := domain.FilterByCategory(items, opts.Category)
	pending, purchased := domain.SplitByPurchased(shown)
	groups := domain.GroupByCategory(shown)
	if opts.AllCategories {
		groups = domain.GroupByAllCategories(shown)
	}
	return GroceryList{
		Category:    opts.Category,
		Items:       shown,
		Pending:     pending,
		Purchased:   purchased,
		Groups:      groups,
		Unpurchased: domain.CountUnpurchased(items),
	}, nil
}

// ObserveAll streams the full item list on every grocery change.
func (s *GroceryService) ObserveAll(ctx context.Context) <-chan Snapshot[[]domain.GroceryItem] {
	return Watch(ctx, s.events, s.repo.ListGroceryItems, domain.KindGrocery)
}

// ObserveCategory streams the items in c on every grocery change.
func (s *GroceryService) ObserveCategory(ctx context.Context, c domain.GroceryCategory) <-chan Snapshot[[]domain.GroceryItem] {
	return Watch(ctx, s.events, func(ctx context.Context) ([]domain.GroceryItem, error) {
		return s.repo.ListGroceryItemsByCategory(ctx, c)
	}, domain.KindGrocery)
}
