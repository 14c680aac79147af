// Package pos is the point-of-sale front counter: the persistent cart, the
// selected customer and checkout.
package pos

import (
	"time"

	"github.com/pkg/errors"
	"github.com/srburger/backoffice/internal/catalog"
	"github.com/srburger/backoffice/internal/customers"
	"github.com/srburger/backoffice/internal/domain"
	"github.com/srburger/backoffice/internal/sales"
	"github.com/srburger/backoffice/internal/store"
	"github.com/srburger/backoffice/pkg/common"
)

// Register drives one sale at a time. Cart and selected customer persist
// across sessions until checkout clears them.
type Register struct {
	store     *store.Store
	catalog   *catalog.Service
	customers *customers.Service
	sales     *sales.Ledger
}

func NewRegister(s *store.Store, c *catalog.Service, cs *customers.Service, sl *sales.Ledger) *Register {
	return &Register{store: s, catalog: c, customers: cs, sales: sl}
}

// Cart returns the in-progress cart.
func (r *Register) Cart() []domain.CartItem {
	return store.Read(r.store, store.CollCart, []domain.CartItem{})
}

func (r *Register) saveCart(cart []domain.CartItem) {
	store.Write(r.store, store.CollCart, cart)
}

// AddToCart adds one unit of a product, incrementing the quantity when the
// product is already in the cart. Unavailable products are rejected.
func (r *Register) AddToCart(productName string) error {
	product, ok := r.catalog.ProductByName(productName)
	if !ok {
		return errors.Errorf("product %q not found", productName)
	}
	if !product.Available {
		return errors.Errorf("product %q is not available", productName)
	}
	cart := r.Cart()
	for i := range cart {
		if cart[i].Product.Name == productName {
			cart[i].Quantity++
			r.saveCart(cart)
			return nil
		}
	}
	r.saveCart(append(cart, domain.CartItem{Product: product, Quantity: 1}))
	return nil
}

// SetQuantity changes a cart line's quantity; zero or less removes the line.
func (r *Register) SetQuantity(productName string, quantity int) {
	if quantity < 1 {
		r.RemoveFromCart(productName)
		return
	}
	cart := r.Cart()
	for i := range cart {
		if cart[i].Product.Name == productName {
			cart[i].Quantity = quantity
			r.saveCart(cart)
			return
		}
	}
}

// RemoveFromCart drops a product line.
func (r *Register) RemoveFromCart(productName string) {
	cart := r.Cart()
	kept := make([]domain.CartItem, 0, len(cart))
	for _, item := range cart {
		if item.Product.Name != productName {
			kept = append(kept, item)
		}
	}
	r.saveCart(kept)
}

// ClearCart empties the cart.
func (r *Register) ClearCart() {
	r.saveCart([]domain.CartItem{})
}

// CartTotal sums the line totals.
func (r *Register) CartTotal() float64 {
	var total float64
	for _, item := range r.Cart() {
		total += item.Total()
	}
	return total
}

// SelectCustomer attaches a customer to the next sale.
func (r *Register) SelectCustomer(id int64) error {
	c, ok := r.customers.ByID(id)
	if !ok {
		return errors.Errorf("customer %d not found", id)
	}
	store.Write(r.store, store.CollSelectedCustomer, &c)
	return nil
}

// SelectedCustomer returns the attached customer, or nil.
func (r *Register) SelectedCustomer() *domain.Customer {
	return store.Read[*domain.Customer](r.store, store.CollSelectedCustomer, nil)
}

// ClearSelectedCustomer detaches the customer.
func (r *Register) ClearSelectedCustomer() {
	r.store.Delete(store.CollSelectedCustomer)
}

// Checkout turns the cart into a completed sale and hands it to the sales
// ledger. Cash sales require enough cash received and record the change.
// Only a successful commit clears the cart and selected customer.
func (r *Register) Checkout(method domain.PaymentMethod, cashReceived float64) (domain.Sale, error) {
	cart := r.Cart()
	if len(cart) == 0 {
		return domain.Sale{}, errors.New("cart is empty")
	}
	customer := r.SelectedCustomer()
	if customer == nil {
		return domain.Sale{}, errors.New("no customer selected")
	}
	if method != domain.PaymentCash && method != domain.PaymentCard {
		return domain.Sale{}, errors.Errorf("unsupported payment method %q", method)
	}

	var subtotal float64
	items := make([]domain.SaleItem, 0, len(cart))
	for _, line := range cart {
		lineTotal := line.Total()
		subtotal += lineTotal
		items = append(items, domain.SaleItem{
			ID:       common.NextID(),
			Name:     line.Product.Name,
			Price:    line.Product.SalePrice,
			Quantity: line.Quantity,
			Total:    lineTotal,
		})
	}

	sale := domain.Sale{
		ID:            common.NextID(),
		Date:          time.Now(),
		Customer:      domain.SaleCustomer{ID: customer.ID, Name: customer.Name},
		Items:         items,
		Subtotal:      subtotal,
		Discount:      0,
		Total:         subtotal,
		PaymentMethod: method,
	}
	if method == domain.PaymentCash {
		if cashReceived < sale.Total {
			return domain.Sale{}, errors.Errorf("cash received %.2f is below total %.2f",
				cashReceived, sale.Total)
		}
		change := cashReceived - sale.Total
		sale.CashReceived = &cashReceived
		sale.Change = &change
	}

	if err := r.sales.Add(sale); err != nil {
		return domain.Sale{}, err
	}

	r.ClearCart()
	r.ClearSelectedCustomer()
	return sale, nil
}
