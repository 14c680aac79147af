// Package catalog owns the product and ingredient reference data: the
// first-run seed, persisted overrides, CRUD and the product image slots.
package catalog

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/srburger/backoffice/internal/domain"
	"github.com/srburger/backoffice/internal/store"
	"go.uber.org/zap"
)

// Service merges the seed catalog with persisted overrides and applies edits.
type Service struct {
	store *store.Store
}

func NewService(s *store.Store) *Service {
	return &Service{store: s}
}

// deletedSet reads a tombstone collection into a lookup set. Deleted seed
// entries must not resurrect through the seed merge, so deletions of seed
// names are recorded here and consulted on every read.
func (s *Service) deletedSet(coll string) map[string]bool {
	names := store.Read(s.store, coll, []string{})
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

func (s *Service) markDeleted(coll, name string) {
	set := s.deletedSet(coll)
	if set[name] {
		return
	}
	names := store.Read(s.store, coll, []string{})
	store.Write(s.store, coll, append(names, name))
}

func (s *Service) unmarkDeleted(coll, name string) {
	set := s.deletedSet(coll)
	if !set[name] {
		return
	}
	names := store.Read(s.store, coll, []string{})
	kept := make([]string, 0, len(names))
	for _, n := range names {
		if n != name {
			kept = append(kept, n)
		}
	}
	store.Write(s.store, coll, kept)
}

// Ingredients returns the active ingredient catalog. A persisted record wins
// over the seed entry with the same name; persisted customs are appended
// after the seed order. Seed entries whose name carries a deletion tombstone
// stay deleted.
func (s *Service) Ingredients() []domain.Ingredient {
	deleted := s.deletedSet(store.CollDeletedIngredients)
	stored := store.Read(s.store, store.CollIngredients, []domain.Ingredient{})
	merged := make([]domain.Ingredient, 0, len(DefaultIngredients)+len(stored))
	if len(stored) == 0 {
		for _, def := range DefaultIngredients {
			if !deleted[def.Name] {
				merged = append(merged, def)
			}
		}
		return merged
	}
	byName := make(map[string]domain.Ingredient, len(stored))
	for _, ing := range stored {
		byName[ing.Name] = ing
	}
	seeded := make(map[string]bool, len(DefaultIngredients))
	for _, def := range DefaultIngredients {
		seeded[def.Name] = true
		if deleted[def.Name] {
			continue
		}
		if ing, ok := byName[def.Name]; ok {
			merged = append(merged, ing)
		} else {
			merged = append(merged, def)
		}
	}
	for _, ing := range stored {
		if !seeded[ing.Name] {
			merged = append(merged, ing)
		}
	}
	return merged
}

// SaveIngredients persists the full ingredient list.
func (s *Service) SaveIngredients(list []domain.Ingredient) {
	store.Write(s.store, store.CollIngredients, list)
}

// IngredientByName looks up an active ingredient.
func (s *Service) IngredientByName(name string) (domain.Ingredient, bool) {
	for _, ing := range s.Ingredients() {
		if ing.Name == name {
			return ing, true
		}
	}
	return domain.Ingredient{}, false
}

// AddIngredient adds a new ingredient to the catalog. Stock always starts at
// zero; it only grows through purchases.
func (s *Service) AddIngredient(ing domain.Ingredient) error {
	ing.Name = strings.TrimSpace(ing.Name)
	if ing.Name == "" {
		return errors.New("ingredient name is required")
	}
	if _, ok := s.IngredientByName(ing.Name); ok {
		return errors.Errorf("ingredient %q already exists", ing.Name)
	}
	ing.Stock = 0
	ing.RecalcUnitPrice()
	// snapshot before clearing the tombstone, or a deleted seed entry would
	// resurface next to the new record
	list := append(s.Ingredients(), ing)
	s.unmarkDeleted(store.CollDeletedIngredients, ing.Name)
	s.SaveIngredients(list)
	return nil
}

// UpdateIngredient replaces the ingredient with the same name, restoring the
// unit price invariant.
func (s *Service) UpdateIngredient(ing domain.Ingredient) error {
	list := s.Ingredients()
	for i := range list {
		if list[i].Name == ing.Name {
			ing.RecalcUnitPrice()
			list[i] = ing
			s.SaveIngredients(list)
			return nil
		}
	}
	return errors.Errorf("ingredient %q not found", ing.Name)
}

// DeleteIngredient removes the ingredient from the active catalog. Historical
// purchases and usage rows keep referencing it by name. Seed names are
// tombstoned so the seed merge does not bring them back.
func (s *Service) DeleteIngredient(name string) {
	list := s.Ingredients()
	kept := list[:0]
	for _, ing := range list {
		if ing.Name != name {
			kept = append(kept, ing)
		}
	}
	s.SaveIngredients(kept)
	for _, def := range DefaultIngredients {
		if def.Name == name {
			s.markDeleted(store.CollDeletedIngredients, name)
			return
		}
	}
}

// Products returns the active product catalog, seed merged with persisted
// overrides and deletion tombstones by the same rules as Ingredients.
func (s *Service) Products() []domain.Product {
	deleted := s.deletedSet(store.CollDeletedProducts)
	stored := store.Read(s.store, store.CollProducts, []domain.Product{})
	merged := make([]domain.Product, 0, len(DefaultProducts)+len(stored))
	if len(stored) == 0 {
		for _, def := range DefaultProducts {
			if !deleted[def.Name] {
				merged = append(merged, def)
			}
		}
		return merged
	}
	byName := make(map[string]domain.Product, len(stored))
	for _, p := range stored {
		byName[p.Name] = p
	}
	seeded := make(map[string]bool, len(DefaultProducts))
	for _, def := range DefaultProducts {
		seeded[def.Name] = true
		if deleted[def.Name] {
			continue
		}
		if p, ok := byName[def.Name]; ok {
			merged = append(merged, p)
		} else {
			merged = append(merged, def)
		}
	}
	for _, p := range stored {
		if !seeded[p.Name] {
			merged = append(merged, p)
		}
	}
	return merged
}

// SaveProducts persists the full product list.
func (s *Service) SaveProducts(list []domain.Product) {
	store.Write(s.store, store.CollProducts, list)
}

// ProductByName looks up an active product by its unique name.
func (s *Service) ProductByName(name string) (domain.Product, bool) {
	for _, p := range s.Products() {
		if p.Name == name {
			return p, true
		}
	}
	return domain.Product{}, false
}

// ProductionCost prices a bill-of-materials against current ingredient unit
// prices. Lines referencing unknown ingredients contribute zero.
func (s *Service) ProductionCost(bom []domain.BOMItem) float64 {
	var cost float64
	for _, item := range bom {
		ing, ok := s.IngredientByName(item.Name)
		if !ok {
			zap.L().Debug("production cost: unknown ingredient skipped",
				zap.String("ingredient", item.Name))
			continue
		}
		cost += ing.UnitPrice * item.Quantity
	}
	return cost
}

// AddProduct adds a product, deriving its production cost at authoring time.
// The cost is a snapshot; later ingredient price changes do not revise it.
func (s *Service) AddProduct(p domain.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return errors.New("product name is required")
	}
	if _, ok := s.ProductByName(p.Name); ok {
		return errors.Errorf("product %q already exists", p.Name)
	}
	p.ProductionCost = s.ProductionCost(p.Ingredients)
	list := append(s.Products(), p)
	s.unmarkDeleted(store.CollDeletedProducts, p.Name)
	s.SaveProducts(list)
	return nil
}

// UpdateProduct replaces the product with the same name, re-deriving the
// production cost from current ingredient prices.
func (s *Service) UpdateProduct(p domain.Product) error {
	list := s.Products()
	for i := range list {
		if list[i].Name == p.Name {
			p.ProductionCost = s.ProductionCost(p.Ingredients)
			list[i] = p
			s.SaveProducts(list)
			return nil
		}
	}
	return errors.Errorf("product %q not found", p.Name)
}

// DeleteProduct removes a product from the active catalog. Historical sales
// keep its name as a string reference. Seed names are tombstoned so the seed
// merge does not bring them back.
func (s *Service) DeleteProduct(name string) {
	list := s.Products()
	kept := list[:0]
	for _, p := range list {
		if p.Name != name {
			kept = append(kept, p)
		}
	}
	s.SaveProducts(kept)
	for _, def := range DefaultProducts {
		if def.Name == name {
			s.markDeleted(store.CollDeletedProducts, name)
			return
		}
	}
}

// ProductImage returns the stored image reference for a product, if any.
func (s *Service) ProductImage(name string) string {
	images := store.Read(s.store, store.CollProductImages, map[string]string{})
	return images[name]
}

// SetProductImage stores an image reference under the product name.
func (s *Service) SetProductImage(name, image string) {
	images := store.Read(s.store, store.CollProductImages, map[string]string{})
	images[name] = image
	store.Write(s.store, store.CollProductImages, images)
}
