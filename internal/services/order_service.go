package services

import (
	"context"
	"log"

	"github.com/YOBOUEARNAUD/e-commerce/internal/model"
	"github.com/YOBOUEARNAUD/e-commerce/internal/repository"
)

type OrderService struct {
	Repo   repository.OrderRepository
	Cart   *CartService
	Mailer OrderMailer // optional, may be nil
}

// OrderMailer sends the confirmation mail after an order is stored. A nil
// mailer disables the step.
type OrderMailer interface {
	SendOrderConfirmation(ctx context.Context, toEmail, orderID string, total float64) error
}

func NewOrderService(repo repository.OrderRepository, cart *CartService, mailer OrderMailer) *OrderService {
	return &OrderService{Repo: repo, Cart: cart, Mailer: mailer}
}

// FormatOrderData maps cart lines into an order payload. The total is frozen
// here; it is never recomputed from live prices afterwards. Address name and
// phone fields fall back to the user profile when the form left them blank.
func FormatOrderData(lines []model.CartLine, addr model.ShippingAddress, user *model.User) model.OrderData {
	items := make([]model.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, model.OrderItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Quantity:  l.Quantity,
			Image:     l.Image,
		})
	}

	var total float64
	for _, it := range items {
		total += it.Subtotal()
	}

	data := model.OrderData{
		Items:           items,
		TotalAmount:     total,
		ShippingAddress: addr,
		Status:          model.OrderStatusPending,
	}
	if user != nil {
		data.UserID = user.ID
		if data.ShippingAddress.FirstName == "" {
			data.ShippingAddress.FirstName = user.FirstName
		}
		if data.ShippingAddress.LastName == "" {
			data.ShippingAddress.LastName = user.LastName
		}
		if data.ShippingAddress.Phone == "" {
			data.ShippingAddress.Phone = user.Phone
		}
	}
	return data
}

// ValidateOrderData checks an assembled order payload without mutating it.
// All applicable errors are accumulated rather than failing on the first.
func ValidateOrderData(data model.OrderData) model.ValidationResult {
	errs := []string{}

	if len(data.Items) == 0 {
		errs = append(errs, "order must contain at least one item")
	}

	if (data.ShippingAddress == model.ShippingAddress{}) {
		errs = append(errs, "shipping address is required")
	} else {
		if data.ShippingAddress.Street == "" {
			errs = append(errs, "street is required")
		}
		if data.ShippingAddress.City == "" {
			errs = append(errs, "city is required")
		}
		if data.ShippingAddress.PostalCode == "" {
			errs = append(errs, "postal code is required")
		}
		if data.ShippingAddress.Country == "" {
			errs = append(errs, "country is required")
		}
	}

	if data.TotalAmount <= 0 {
		errs = append(errs, "total amount must be greater than 0")
	}

	return model.ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// CreateRequest is the checkout input; items and total come from the stored
// cart, never from the request body.
type CreateRequest struct {
	ShippingAddress model.ShippingAddress
	PaymentMethod   model.PaymentMethod
	Notes           string
}

// Create turns the user's cart into a stored order. The cart is cleared only
// after the insert succeeds; a storage failure leaves it intact.
func (s *OrderService) Create(ctx context.Context, user *model.User, req CreateRequest) (*model.Order, error) {
	if !req.PaymentMethod.Valid() {
		return nil, ErrInvalidPayment
	}

	cart, err := s.Cart.Store.Get(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	data := FormatOrderData(cart.Items, req.ShippingAddress, user)
	if result := ValidateOrderData(data); !result.IsValid {
		return nil, &ValidationError{Errors: result.Errors}
	}

	order := &model.Order{
		UserID:          data.UserID,
		Items:           data.Items,
		TotalAmount:     data.TotalAmount,
		ShippingAddress: data.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Status:          data.Status,
		Notes:           req.Notes,
	}
	if err := s.Repo.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := s.Cart.Clear(ctx, user.ID); err != nil {
		// order exists; a stale cart is recoverable, losing the order is not
		log.Printf("order %s created but cart clear failed: %v", order.ID, err)
	}

	if s.Mailer != nil {
		if err := s.Mailer.SendOrderConfirmation(ctx, user.Email, order.ID, order.TotalAmount); err != nil {
			log.Printf("order %s: confirmation mail failed: %v", order.ID, err)
		}
	}

	return order, nil
}

func (s *OrderService) List(ctx context.Context, userID string) ([]model.Order, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *OrderService) ListAll(ctx context.Context) ([]model.Order, error) {
	return s.Repo.ListAll(ctx)
}

// GetByID returns the order if it belongs to userID or the caller is admin.
func (s *OrderService) GetByID(ctx context.Context, userID, role, orderID string) (*model.Order, error) {
	order, err := s.Repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID && role != model.RoleAdmin {
		return nil, ErrNotOrderOwner
	}
	return order, nil
}

// UpdateStatus moves an order along the status machine. Transitions outside
// the table are rejected; the stored state is left untouched.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	order, err := s.Repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, ErrInvalidTransition
	}
	if err := s.Repo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

func (s *OrderService) Confirm(ctx context.Context, orderID string) (*model.Order, error) {
	return s.UpdateStatus(ctx, orderID, model.OrderStatusConfirmed)
}

// Cancel is the owner-facing cancellation; it goes through the same guarded
// transition as any other status change.
func (s *OrderService) Cancel(ctx context.Context, userID, role, orderID string) (*model.Order, error) {
	order, err := s.Repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID && role != model.RoleAdmin {
		return nil, ErrNotOrderOwner
	}
	if !order.Status.CanTransitionTo(model.OrderStatusCancelled) {
		return nil, ErrInvalidTransition
	}
	if err := s.Repo.UpdateStatus(ctx, orderID, model.OrderStatusCancelled); err != nil {
		return nil, err
	}
	order.Status = model.OrderStatusCancelled
	return order, nil
}

// Delete removes an order record entirely. Admin only; wired behind the
// admin middleware at the route level.
func (s *OrderService) Delete(ctx context.Context, orderID string) error {
	return s.Repo.Delete(ctx, orderID)
}
