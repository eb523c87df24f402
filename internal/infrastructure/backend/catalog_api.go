package backend

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/domain"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/ports"
)

// Backend records are decoded once at this boundary and mapped into domain
// types; nothing downstream touches loosely-shaped data.

type categoryRecord struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (r categoryRecord) toDomain() domain.Category {
	return domain.Category{ID: r.ID, Name: r.Name, Description: r.Description, Image: r.Image}
}

type productRecord struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	CategoryID  int     `json:"categoryId"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

func (r productRecord) toDomain() domain.Product {
	return domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Image:       r.Image,
		CategoryID:  r.CategoryID,
		Category:    r.Category,
		Stock:       r.Stock,
	}
}

type productCountRecord struct {
	CategoryID   int    `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Count        int    `json:"count"`
}

// --- Categories ---

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var records []categoryRecord
	if err := c.getJSON(ctx, "categories_list", "/categories", &records); err != nil {
		return nil, err
	}
	cats := make([]domain.Category, 0, len(records))
	for _, r := range records {
		cats = append(cats, r.toDomain())
	}
	return cats, nil
}

// CreateCategory posts a multipart form (name, description, optional image).
func (c *Client) CreateCategory(ctx context.Context, in ports.CategoryUpsert) (*domain.Category, error) {
	fields := map[string]string{
		"name":        in.Name,
		"description": in.Description,
	}
	req, err := c.newMultipartRequest(ctx, http.MethodPost, "/categories", fields, in.Image)
	if err != nil {
		return nil, err
	}
	var record categoryRecord
	if err := c.roundTrip("category_create", req, &record, false); err != nil {
		return nil, err
	}
	cat := record.toDomain()
	return &cat, nil
}

// UpdateCategory sends plain JSON; the backend only accepts name and
// description on update.
func (c *Client) UpdateCategory(ctx context.Context, id int, in ports.CategoryUpsert) (*domain.Category, error) {
	body := map[string]string{"name": in.Name, "description": in.Description}
	req, err := c.newJSONRequest(ctx, http.MethodPut, "/categories/"+strconv.Itoa(id), body)
	if err != nil {
		return nil, err
	}
	var record categoryRecord
	if err := c.roundTrip("category_update", req, &record, false); err != nil {
		return nil, err
	}
	cat := record.toDomain()
	return &cat, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	req, err := c.newJSONRequest(ctx, http.MethodDelete, "/categories/"+strconv.Itoa(id), nil)
	if err != nil {
		return err
	}
	return c.roundTrip("category_delete", req, nil, false)
}

func (c *Client) CategoryProductCounts(ctx context.Context) ([]domain.CategoryProductCount, error) {
	var records []productCountRecord
	if err := c.getJSON(ctx, "category_product_counts", "/categories/product-count", &records); err != nil {
		return nil, err
	}
	counts := make([]domain.CategoryProductCount, 0, len(records))
	for _, r := range records {
		counts = append(counts, domain.CategoryProductCount{
			CategoryID:   r.CategoryID,
			CategoryName: r.CategoryName,
			Count:        r.Count,
		})
	}
	return counts, nil
}

// --- Products ---

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var records []productRecord
	if err := c.getJSON(ctx, "products_list", "/products", &records); err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(records))
	for _, r := range records {
		products = append(products, r.toDomain())
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	var record productRecord
	if err := c.getJSON(ctx, "product_get", "/products/"+strconv.Itoa(id), &record); err != nil {
		return nil, err
	}
	p := record.toDomain()
	return &p, nil
}

// CreateProduct posts a multipart form (name, price, categoryId, optional
// description/stock/image).
func (c *Client) CreateProduct(ctx context.Context, in ports.ProductUpsert) (*domain.Product, error) {
	req, err := c.newMultipartRequest(ctx, http.MethodPost, "/products", productFields(in), in.Image)
	if err != nil {
		return nil, err
	}
	var record productRecord
	if err := c.roundTrip("product_create", req, &record, false); err != nil {
		return nil, err
	}
	p := record.toDomain()
	return &p, nil
}

// UpdateProduct sends the same multipart form as create.
func (c *Client) UpdateProduct(ctx context.Context, id int, in ports.ProductUpsert) (*domain.Product, error) {
	req, err := c.newMultipartRequest(ctx, http.MethodPut, "/products/"+strconv.Itoa(id), productFields(in), in.Image)
	if err != nil {
		return nil, err
	}
	var record productRecord
	if err := c.roundTrip("product_update", req, &record, false); err != nil {
		return nil, err
	}
	p := record.toDomain()
	return &p, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	req, err := c.newJSONRequest(ctx, http.MethodDelete, "/products/"+strconv.Itoa(id), nil)
	if err != nil {
		return err
	}
	return c.roundTrip("product_delete", req, nil, false)
}

func productFields(in ports.ProductUpsert) map[string]string {
	fields := map[string]string{
		"name":       in.Name,
		"price":      fmt.Sprintf("%g", in.Price),
		"categoryId": strconv.Itoa(in.CategoryID),
	}
	if in.Description != "" {
		fields["description"] = in.Description
	}
	if in.Stock > 0 {
		fields["stock"] = strconv.Itoa(in.Stock)
	}
	return fields
}
