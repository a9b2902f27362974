package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

// productDocument — форма документа каталога. Поле id — прикладной
// последовательный идентификатор, _id базы наружу не отдаётся.
type productDocument struct {
	ID        int64        `bson:"id"`
	Name      string       `bson:"name"`
	Price     float64      `bson:"price"`
	Sizes     sizeDocument `bson:"sizes"`
	CreatedAt time.Time    `bson:"created_at,omitempty"`
}

type sizeDocument struct {
	Size     string `bson:"size"`
	Quantity int    `bson:"quantity"`
}

// productRepository — реализация ProductRepository поверх MongoDB.
type productRepository struct {
	products *mongodrv.Collection
}

// NewProductRepository возвращает репозиторий каталога поверх Store.
func NewProductRepository(store *Store) domain.ProductRepository {
	return &productRepository{products: store.db.Collection(collProducts)}
}

// Create сохраняет товар с уже назначенным последовательным id.
func (r *productRepository) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	if _, err := r.products.InsertOne(ctx, toProductDocument(product)); err != nil {
		return domain.Product{}, fmt.Errorf("insert product: %w", err)
	}
	return product, nil
}

// List возвращает страницу товаров в порядке _id и общее число совпадений.
func (r *productRepository) List(ctx context.Context, filter domain.ProductFilter, page domain.Page) ([]domain.Product, int64, error) {
	query := buildProductQuery(filter)

	total, err := r.products.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(page.Offset).
		SetLimit(page.Limit)
	cursor, err := r.products.Find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	result := make([]domain.Product, 0, page.Limit)
	for cursor.Next(ctx) {
		var doc productDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode product: %w", err)
		}
		result = append(result, fromProductDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate products: %w", err)
	}

	return result, total, nil
}

// FindByID возвращает товар по последовательному id или ErrProductNotFound.
func (r *productRepository) FindByID(ctx context.Context, sequentialID int64) (domain.Product, error) {
	var doc productDocument
	err := r.products.FindOne(ctx, bson.M{"id": sequentialID}).Decode(&doc)
	if errors.Is(err, mongodrv.ErrNoDocuments) {
		return domain.Product{}, domain.ErrProductNotFound
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("find product by id: %w", err)
	}
	return fromProductDocument(doc), nil
}

// buildProductQuery переводит фильтр в запрос Mongo: регистронезависимая
// подстрока по имени и точное совпадение метки размера.
func buildProductQuery(filter domain.ProductFilter) bson.M {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Name), Options: "i"}
	}
	if filter.Size != "" {
		query["sizes.size"] = filter.Size
	}
	return query
}

func toProductDocument(product domain.Product) productDocument {
	return productDocument{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price,
		Sizes: sizeDocument{
			Size:     product.Sizes.Size,
			Quantity: product.Sizes.Quantity,
		},
		CreatedAt: product.CreatedAt,
	}
}

func fromProductDocument(doc productDocument) domain.Product {
	return domain.Product{
		ID:    doc.ID,
		Name:  doc.Name,
		Price: doc.Price,
		Sizes: domain.SizeInfo{
			Size:     doc.Sizes.Size,
			Quantity: doc.Sizes.Quantity,
		},
		CreatedAt: doc.CreatedAt,
	}
}

var _ domain.ProductRepository = (*productRepository)(nil)
