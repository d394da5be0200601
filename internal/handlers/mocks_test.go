package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zapshift/zapshift-backend/internal/models"
	"github.com/zapshift/zapshift-backend/internal/services"
	"github.com/zapshift/zapshift-backend/internal/stores"
)

// mockParcelStore implements ParcelStore for testing.
type mockParcelStore struct {
	ListFunc     func(ctx context.Context, senderEmail string) ([]models.Parcel, error)
	GetFunc      func(ctx context.Context, id primitive.ObjectID) (*models.Parcel, error)
	CreateFunc   func(ctx context.Context, parcel *models.Parcel) (primitive.ObjectID, error)
	DeleteFunc   func(ctx context.Context, id primitive.ObjectID) (int64, error)
	MarkPaidFunc func(ctx context.Context, id primitive.ObjectID, trackingID string) (int64, error)
}

func (m *mockParcelStore) List(ctx context.Context, senderEmail string) ([]models.Parcel, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, senderEmail)
	}
	return []models.Parcel{}, nil
}

func (m *mockParcelStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Parcel, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, stores.ErrNotFound
}

func (m *mockParcelStore) Create(ctx context.Context, parcel *models.Parcel) (primitive.ObjectID, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, parcel)
	}
	return primitive.NewObjectID(), nil
}

func (m *mockParcelStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 0, nil
}

func (m *mockParcelStore) MarkPaid(ctx context.Context, id primitive.ObjectID, trackingID string) (int64, error) {
	if m.MarkPaidFunc != nil {
		return m.MarkPaidFunc(ctx, id, trackingID)
	}
	return 0, nil
}

// mockUserStore implements UserStore for testing.
type mockUserStore struct {
	FindByEmailFunc func(ctx context.Context, email string) (*models.User, error)
	CreateFunc      func(ctx context.Context, user *models.User) (primitive.ObjectID, error)
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, stores.ErrNotFound
}

func (m *mockUserStore) Create(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return primitive.NewObjectID(), nil
}

// mockRiderStore implements RiderStore for testing.
type mockRiderStore struct {
	CreateFunc       func(ctx context.Context, rider *models.Rider) (primitive.ObjectID, error)
	ListFunc         func(ctx context.Context) ([]models.Rider, error)
	UpdateStatusFunc func(ctx context.Context, id primitive.ObjectID, status models.RiderStatus) (int64, error)
}

func (m *mockRiderStore) Create(ctx context.Context, rider *models.Rider) (primitive.ObjectID, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, rider)
	}
	return primitive.NewObjectID(), nil
}

func (m *mockRiderStore) List(ctx context.Context) ([]models.Rider, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Rider{}, nil
}

func (m *mockRiderStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.RiderStatus) (int64, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return 0, nil
}

// mockPaymentStore implements PaymentStore for testing.
type mockPaymentStore struct {
	InsertFunc              func(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error)
	FindByTransactionIDFunc func(ctx context.Context, transactionID string) (*models.Payment, error)
	ListByEmailFunc         func(ctx context.Context, email string) ([]models.Payment, error)
}

func (m *mockPaymentStore) Insert(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, payment)
	}
	return primitive.NewObjectID(), nil
}

func (m *mockPaymentStore) FindByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	if m.FindByTransactionIDFunc != nil {
		return m.FindByTransactionIDFunc(ctx, transactionID)
	}
	return nil, stores.ErrNotFound
}

func (m *mockPaymentStore) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	if m.ListByEmailFunc != nil {
		return m.ListByEmailFunc(ctx, email)
	}
	return []models.Payment{}, nil
}

// mockCheckout implements CheckoutProvider for testing.
type mockCheckout struct {
	CreateSessionFunc   func(ctx context.Context, req services.CheckoutRequest) (*services.CheckoutSession, error)
	RetrieveSessionFunc func(ctx context.Context, id string) (*services.CheckoutSession, error)
}

func (m *mockCheckout) CreateSession(ctx context.Context, req services.CheckoutRequest) (*services.CheckoutSession, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, req)
	}
	return &services.CheckoutSession{URL: "https://checkout.example/session"}, nil
}

func (m *mockCheckout) RetrieveSession(ctx context.Context, id string) (*services.CheckoutSession, error) {
	if m.RetrieveSessionFunc != nil {
		return m.RetrieveSessionFunc(ctx, id)
	}
	return &services.CheckoutSession{ID: id}, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// performRequest runs a request through the router. A non-nil body is sent
// as JSON.
func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(w *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return out
}
