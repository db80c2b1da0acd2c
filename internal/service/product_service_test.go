package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mimistyle/backend/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductFixture() (*fakeProductRepo, ProductService) {
	userRepo := &fakeUserRepo{users: map[uint64]*model.User{
		1: {ID: 1, Username: "admin", FullName: "Admin User"},
	}}
	categoryRepo := &fakeCategoryRepo{categories: map[uint64]*model.Category{
		2: {ID: 2, Name: "Đồ chơi"},
	}}
	productRepo := &fakeProductRepo{products: map[uint64]*model.Product{}}
	return productRepo, NewProductService(productRepo, userRepo, categoryRepo)
}

func validInput() ProductInput {
	return ProductInput{
		Name:                "Xe đẩy em bé",
		Description:         "Xe đẩy nhẹ, gấp gọn",
		ConditionPercentage: 90,
		TradeType:           model.TradeTypeBuyOnly,
		BuyPrice:            decimal.NewFromInt(3000000),
		AddressContact:      "123 Nguyễn Văn Cừ, Q.5",
		SellerID:            1,
		CategoryID:          2,
	}
}

func TestProductService_Create(t *testing.T) {
	_, svc := newProductFixture()

	p, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, model.ProductStatusActive, p.Status, "status defaults to ACTIVE")
}

func TestProductService_Create_Validation(t *testing.T) {
	mutate := func(fn func(*ProductInput)) ProductInput {
		in := validInput()
		fn(&in)
		return in
	}

	tests := []struct {
		name string
		in   ProductInput
	}{
		{"blank name", mutate(func(in *ProductInput) { in.Name = "   " })},
		{"blank description", mutate(func(in *ProductInput) { in.Description = "" })},
		{"blank address", mutate(func(in *ProductInput) { in.AddressContact = "" })},
		{"condition out of range", mutate(func(in *ProductInput) { in.ConditionPercentage = 101 })},
		{"buy-only without price", mutate(func(in *ProductInput) { in.BuyPrice = decimal.Zero })},
		{"rent-only without price", mutate(func(in *ProductInput) {
			in.TradeType = model.TradeTypeRentOnly
			in.RentPrice = decimal.Zero
		})},
		{"both without any price", mutate(func(in *ProductInput) {
			in.TradeType = model.TradeTypeBoth
			in.BuyPrice = decimal.Zero
			in.RentPrice = decimal.Zero
		})},
		{"missing trade type", mutate(func(in *ProductInput) { in.TradeType = "" })},
		{"missing seller", mutate(func(in *ProductInput) { in.SellerID = 0 })},
		{"unknown seller", mutate(func(in *ProductInput) { in.SellerID = 99 })},
		{"missing category", mutate(func(in *ProductInput) { in.CategoryID = 0 })},
		{"unknown category", mutate(func(in *ProductInput) { in.CategoryID = 99 })},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, svc := newProductFixture()
			_, err := svc.Create(context.Background(), tt.in)
			var ir *InvalidRequestError
			require.True(t, errors.As(err, &ir), "want InvalidRequestError, got %v", err)
			assert.NotEmpty(t, ir.Message)
		})
	}
}

func TestProductService_Create_BothNeedsOnlyOnePrice(t *testing.T) {
	_, svc := newProductFixture()

	in := validInput()
	in.TradeType = model.TradeTypeBoth
	in.BuyPrice = decimal.Zero
	in.RentPrice = decimal.NewFromInt(150000)
	in.RentUnit = model.RentUnitMonth

	_, err := svc.Create(context.Background(), in)
	assert.NoError(t, err)
}

func TestProductService_GetUpdateDelete(t *testing.T) {
	productRepo, svc := newProductFixture()

	created, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	in := validInput()
	in.Name = "Xe đẩy đã đổi tên"
	in.BuyPrice = decimal.NewFromInt(2500000)
	updated, err := svc.Update(context.Background(), created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Xe đẩy đã đổi tên", updated.Name)
	assert.True(t, updated.BuyPrice.Equal(decimal.NewFromInt(2500000)))

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, productRepo.products)

	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(context.Background(), 404, validInput())
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
