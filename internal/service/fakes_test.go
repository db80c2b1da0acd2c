package service

import (
	"context"
	"sort"
	"time"

	"github.com/mimistyle/backend/internal/model"
	"gorm.io/gorm"
)

// In-memory repository fakes. They mirror the query semantics the GORM
// implementations provide: missing rows surface gorm.ErrRecordNotFound
// and image listings come back ordered by id.

type fakeUserRepo struct {
	users map[uint64]*model.User
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint64) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type fakeCategoryRepo struct {
	categories map[uint64]*model.Category
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uint64) (*model.Category, error) {
	if c, ok := f.categories[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepo) FindByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range f.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	out := make([]model.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *model.Category) error {
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.categories)), nil
}

type fakeProductRepo struct {
	products map[uint64]*model.Product
	nextID   uint64
}

func (f *fakeProductRepo) Create(_ context.Context, p *model.Product) error {
	f.nextID++
	p.ID = f.nextID
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uint64) (*model.Product, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProductRepo) List(_ context.Context) ([]model.Product, error) {
	out := make([]model.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductRepo) ListBySeller(_ context.Context, sellerID uint64) ([]model.Product, error) {
	out := make([]model.Product, 0)
	for _, p := range f.products {
		if p.SellerID == sellerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *model.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uint64) error {
	delete(f.products, id)
	return nil
}

type fakeOrderRepo struct {
	orders  map[uint64]*model.Order
	nextID  uint64
	updates []model.OrderStatus
}

func (f *fakeOrderRepo) Create(_ context.Context, o *model.Order) error {
	f.nextID++
	o.ID = f.nextID
	for i := range o.Items {
		o.Items[i].OrderID = o.ID
	}
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id uint64) (*model.Order, error) {
	if o, ok := f.orders[id]; ok {
		return o, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id uint64, status model.OrderStatus) error {
	if o, ok := f.orders[id]; ok {
		o.Status = status
	}
	f.updates = append(f.updates, status)
	return nil
}

func (f *fakeOrderRepo) ListByBuyer(_ context.Context, buyerID uint64) ([]model.Order, error) {
	out := make([]model.Order, 0)
	for _, o := range f.orders {
		if o.BuyerID == buyerID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type soldCall struct {
	sellerID   uint64
	start, end *time.Time
}

type fakeOrderItemRepo struct {
	items []model.OrderItem
	calls []soldCall
}

func (f *fakeOrderItemRepo) ListSoldBySeller(_ context.Context, sellerID uint64) ([]model.OrderItem, error) {
	f.calls = append(f.calls, soldCall{sellerID: sellerID})
	return f.filter(sellerID, nil, nil), nil
}

func (f *fakeOrderItemRepo) ListSoldBySellerBetween(_ context.Context, sellerID uint64, start, end *time.Time) ([]model.OrderItem, error) {
	f.calls = append(f.calls, soldCall{sellerID: sellerID, start: start, end: end})
	return f.filter(sellerID, start, end), nil
}

func (f *fakeOrderItemRepo) filter(sellerID uint64, start, end *time.Time) []model.OrderItem {
	out := make([]model.OrderItem, 0)
	for _, it := range f.items {
		if it.Product == nil || it.Product.SellerID != sellerID {
			continue
		}
		if it.Order == nil || it.Order.Status == model.OrderStatusCancelled {
			continue
		}
		if start != nil && it.Order.CreatedAt.Before(*start) {
			continue
		}
		if end != nil && it.Order.CreatedAt.After(*end) {
			continue
		}
		out = append(out, it)
	}
	return out
}

type fakeImageRepo struct {
	images []*model.ProductImage
	nextID uint64
}

func (f *fakeImageRepo) Create(_ context.Context, img *model.ProductImage) error {
	f.nextID++
	img.ID = f.nextID
	f.images = append(f.images, img)
	return nil
}

func (f *fakeImageRepo) ListByProduct(_ context.Context, productID uint64) ([]model.ProductImage, error) {
	out := make([]model.ProductImage, 0)
	for _, img := range f.images {
		if img.ProductID == productID {
			out = append(out, *img)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeImageRepo) FindByProductAndFilename(_ context.Context, productID uint64, filename string) (*model.ProductImage, error) {
	for _, img := range f.images {
		if img.ProductID == productID && img.ImageURL == filename {
			return img, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeImageRepo) HasThumbnail(_ context.Context, productID uint64) (bool, error) {
	for _, img := range f.images {
		if img.ProductID == productID && img.IsThumbnail {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeImageRepo) SetThumbnail(_ context.Context, imageID uint64, isThumbnail bool) error {
	for _, img := range f.images {
		if img.ID == imageID {
			img.IsThumbnail = isThumbnail
		}
	}
	return nil
}

func (f *fakeImageRepo) Delete(_ context.Context, imageID uint64) error {
	out := f.images[:0]
	for _, img := range f.images {
		if img.ID != imageID {
			out = append(out, img)
		}
	}
	f.images = out
	return nil
}

func (f *fakeImageRepo) thumbnailCount(productID uint64) int {
	n := 0
	for _, img := range f.images {
		if img.ProductID == productID && img.IsThumbnail {
			n++
		}
	}
	return n
}
