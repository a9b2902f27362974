package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

// orderDocument — форма документа заказа. Наружу _id отдаётся в hex-виде.
type orderDocument struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	UserID    string              `bson:"userId"`
	Items     []orderItemDocument `bson:"items"`
	CreatedAt time.Time           `bson:"created_at,omitempty"`
}

type orderItemDocument struct {
	ProductID string `bson:"productId"`
	Qty       int    `bson:"qty"`
}

// orderRepository — реализация OrderRepository поверх MongoDB.
type orderRepository struct {
	orders *mongodrv.Collection
}

// NewOrderRepository возвращает репозиторий заказов поверх Store.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{orders: store.db.Collection(collOrders)}
}

// Create сохраняет заказ как есть; идентификатор назначает база.
// Ссылки на товары намеренно не проверяются.
func (r *orderRepository) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	res, err := r.orders.InsertOne(ctx, toOrderDocument(order))
	if err != nil {
		return domain.Order{}, fmt.Errorf("insert order: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return domain.Order{}, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	order.ID = oid.Hex()
	return order, nil
}

// ListByUser возвращает страницу заказов пользователя в порядке _id
// и общее число его заказов.
func (r *orderRepository) ListByUser(ctx context.Context, userID string, page domain.Page) ([]domain.Order, int64, error) {
	query := bson.M{"userId": userID}

	total, err := r.orders.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(page.Offset).
		SetLimit(page.Limit)
	cursor, err := r.orders.Find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("find orders: %w", err)
	}
	defer cursor.Close(ctx)

	result := make([]domain.Order, 0, page.Limit)
	for cursor.Next(ctx) {
		var doc orderDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode order: %w", err)
		}
		result = append(result, fromOrderDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate orders: %w", err)
	}

	return result, total, nil
}

func toOrderDocument(order domain.Order) orderDocument {
	items := make([]orderItemDocument, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemDocument{ProductID: item.ProductID, Qty: item.Qty})
	}
	return orderDocument{
		UserID:    order.UserID,
		Items:     items,
		CreatedAt: order.CreatedAt,
	}
}

func fromOrderDocument(doc orderDocument) domain.Order {
	items := make([]domain.OrderItem, 0, len(doc.Items))
	for _, item := range doc.Items {
		items = append(items, domain.OrderItem{ProductID: item.ProductID, Qty: item.Qty})
	}
	return domain.Order{
		ID:        doc.ID.Hex(),
		UserID:    doc.UserID,
		Items:     items,
		CreatedAt: doc.CreatedAt,
	}
}

var _ domain.OrderRepository = (*orderRepository)(nil)
