package main

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"warehouse/internal/domain"
)

var (
	categories = []string{"Electronics", "Office Supplies", "Hardware", "Apparel", "Groceries"}
	statuses   = []string{"Pending", "In Transit", "Delivered", "Delayed"}
)

type seeder struct {
	api    string
	fake   *gofakeit.Faker
	log    *zap.Logger
	now    func() time.Time
	sleep  func(time.Duration)
	client func(url string) *fiber.Agent

	maxRetries int
}

type result struct {
	Suppliers []int64
	Items     []int64
	Shipments []int64
}

func newSeeder(api string, seed int64, log *zap.Logger) *seeder {
	return &seeder{
		api:    api,
		fake:   gofakeit.New(seed),
		log:    log,
		now:    time.Now,
		sleep:  time.Sleep,
		client: fiber.Post,

		maxRetries: 5,
	}
}

// Run creates suppliers, then items pointing at them, then shipments pointing
// at the items. A failed create is logged and skipped.
func (s *seeder) Run(nSup, nItems, nShips int) result {
	var res result
	for range nSup {
		// fake company names repeat now and then; a fresh payload gets past the unique name
		for try := 0; try < 3; try++ {
			if id, ok := s.post("/suppliers/", s.supplier()); ok {
				res.Suppliers = append(res.Suppliers, id)
				break
			}
		}
	}
	if len(res.Suppliers) == 0 {
		return res
	}
	for range nItems {
		if id, ok := s.post("/items/", s.item(res.Suppliers)); ok {
			res.Items = append(res.Items, id)
		}
	}
	if len(res.Items) == 0 {
		return res
	}
	for range nShips {
		if id, ok := s.post("/shipments/", s.shipment(res.Items)); ok {
			res.Shipments = append(res.Shipments, id)
		}
	}
	return res
}

func (s *seeder) supplier() domain.SupplierInput {
	contact, phone := s.fake.Name(), s.fake.Phone()
	return domain.SupplierInput{
		Name:          s.fake.Company(),
		ContactPerson: &contact,
		Email:         s.fake.Email(),
		Phone:         &phone,
	}
}

func (s *seeder) item(supplierIDs []int64) map[string]any {
	sid := supplierIDs[s.fake.IntRange(0, len(supplierIDs)-1)]
	return map[string]any{
		"name":        s.fake.Word() + " " + s.fake.Word(),
		"quantity":    s.fake.IntRange(10, 500),
		"category":    s.fake.RandomString(categories),
		"price":       math.Round(s.fake.Float64Range(5.99, 999.99)*100) / 100,
		"supplier_id": sid,
	}
}

func (s *seeder) shipment(itemIDs []int64) map[string]any {
	due := s.now().AddDate(0, 0, s.fake.IntRange(1, 30))
	return map[string]any{
		"item_id":                 itemIDs[s.fake.IntRange(0, len(itemIDs)-1)],
		"quantity":                s.fake.IntRange(1, 50),
		"origin":                  s.fake.Address().Address,
		"destination":             s.fake.Address().Address,
		"status":                  s.fake.RandomString(statuses),
		"estimated_delivery_date": due.Format(domain.DateLayout),
	}
}

// post creates one row and returns its id. A 429 from the API's rate limiter
// is waited out (Retry-After, or one second) and retried up to maxRetries times.
func (s *seeder) post(path string, payload any) (int64, bool) {
	for attempt := 0; ; attempt++ {
		id, code, body, wait, errs := s.send(path, payload)
		if len(errs) > 0 && code == 0 {
			s.log.Warn("seed request failed", zap.String("path", path), zap.Errors("errors", errs))
			return 0, false
		}
		if code == fiber.StatusTooManyRequests && attempt < s.maxRetries {
			s.log.Info("seed rate limited, waiting",
				zap.String("path", path),
				zap.Duration("wait", wait),
				zap.Int("attempt", attempt+1),
			)
			s.sleep(wait)
			continue
		}
		if code != fiber.StatusOK {
			s.log.Warn("seed create rejected",
				zap.String("path", path),
				zap.Int("status", code),
				zap.ByteString("body", body),
			)
			return 0, false
		}
		if id == 0 {
			s.log.Warn("seed create returned no id", zap.String("path", path), zap.ByteString("body", body))
			return 0, false
		}
		return id, true
	}
}

func (s *seeder) send(path string, payload any) (id int64, code int, body []byte, wait time.Duration, errs []error) {
	resp := fiber.AcquireResponse()
	defer fiber.ReleaseResponse(resp)

	var created struct {
		ID int64 `json:"id"`
	}
	code, body, errs = s.client(s.api + path).JSON(payload).SetResponse(resp).Struct(&created)
	return created.ID, code, body, retryAfter(resp.Header.Peek(fiber.HeaderRetryAfter)), errs
}

// retryAfter reads a Retry-After value in seconds; anything else means one second.
func retryAfter(v []byte) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(string(v)))
	if err != nil || secs < 1 {
		return time.Second
	}
	return time.Duration(secs) * time.Second
}
