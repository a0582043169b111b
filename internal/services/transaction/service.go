package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"fraudeye/internal/models"
	"fraudeye/internal/repositories"
	"fraudeye/internal/services/alerting"
	"fraudeye/internal/services/risk"
)

type service struct {
	classifier  risk.Classifier
	store       repositories.SessionStore
	publisher   alerting.Publisher
	generator   Generator
	integration IntegrationProvider
	now         func() time.Time

	publishTimeout time.Duration
}

// Config groups the collaborators of the transaction service.
type Config struct {
	Classifier  risk.Classifier
	Store       repositories.SessionStore
	Publisher   alerting.Publisher
	Generator   Generator
	Integration IntegrationProvider
	Now         func() time.Time
	// PublishTimeout bounds how long Record waits on the alert sinks.
	PublishTimeout time.Duration
}

// NewService creates a new transaction service
func NewService(cfg Config) Service {
	if cfg.Classifier == nil {
		panic("classifier is required")
	}
	if cfg.Store == nil {
		panic("store is required")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = DefaultPublishTimeout
	}
	return &service{
		classifier:  cfg.Classifier,
		store:       cfg.Store,
		publisher:   cfg.Publisher,
		generator:   cfg.Generator,
		integration: cfg.Integration,
		now:         cfg.Now,

		publishTimeout: cfg.PublishTimeout,
	}
}

// Check classifies attrs without recording anything.
func (s *service) Check(ctx context.Context, attrs models.TransactionAttributes) models.RiskPrediction {
	return s.classifier.Classify(ctx, attrs)
}

func (s *service) Ingest(ctx context.Context, req IngestRequest) (*IngestResult, error) {
	prediction := s.classifier.Classify(ctx, req.Attributes)

	// The caller went away while we were waiting; drop the result.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestCancelled, err)
	}

	now := s.now()
	txn := models.Transaction{
		ID:        req.ID,
		Timestamp: req.Attributes.Timestamp,
		Amount:    req.Attributes.AmountOrZero(),
		Merchant:  req.Attributes.Merchant,
		Category:  req.Attributes.Category,
		Location:  req.Attributes.Location,
		RiskScore: prediction.Confidence,
		IsFraud:   prediction.IsFraud,
		Status:    prediction.Status(),
	}
	if txn.ID == "" {
		txn.ID = TransactionIDPrefix + strconv.FormatInt(now.UnixMilli(), 10)
	}
	if txn.Timestamp == "" {
		txn.Timestamp = models.FormatTimestamp(now)
	}

	alert, err := s.Record(ctx, txn)
	if err != nil {
		return nil, err
	}

	return &IngestResult{
		Transaction: txn,
		Prediction:  prediction,
		Alert:       alert,
	}, nil
}

// Record appends txn to the session and raises its alert when it is fraud.
func (s *service) Record(ctx context.Context, txn models.Transaction) (*models.Alert, error) {
	if err := s.store.Append(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	alert := alerting.MaybeCreateAlert(txn, alerting.OriginAPI)
	if alert == nil {
		return nil, nil
	}

	if err := s.store.AppendAlert(ctx, *alert); err != nil {
		if errors.Is(err, repositories.ErrDuplicateAlert) {
			log.Printf("Alert %s already raised, skipping", alert.ID)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to record alert: %w", err)
	}

	if s.publisher != nil {
		s.publish(alert)
	}
	return alert, nil
}

// publish hands alert to the sinks and waits at most publishTimeout. The
// publish runs detached from the request so a slow broker finishes or
// times out on its own. Sink failures are logged by the publisher and never
// undo the record.
func (s *service) publish(alert *models.Alert) {
	ctx, cancel := context.WithTimeout(context.Background(), s.publishTimeout)
	done := make(chan struct{})
	go func() {
		defer cancel()
		defer close(done)
		_ = s.publisher.Publish(ctx, alert)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		log.Printf("⚠️ Alert %s publish exceeded %s", alert.ID, s.publishTimeout)
	}
}

func (s *service) Sandbox(ctx context.Context, body []byte) (*models.SandboxResponse, error) {
	start := s.now()

	var req SandboxRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, DecodeError(err)
	}

	result, err := s.Ingest(ctx, IngestRequest{
		ID: req.TransactionID,
		Attributes: models.TransactionAttributes{
			Amount:    req.Amount,
			Merchant:  req.Merchant,
			Category:  req.Category,
			Location:  req.Location,
			Timestamp: req.Timestamp,
		},
	})
	if err != nil {
		return nil, err
	}

	resp := &models.SandboxResponse{
		Status:        DecisionApproved,
		RiskScore:     strconv.FormatFloat(result.Prediction.Confidence, 'f', 4, 64),
		RiskLevel:     result.Prediction.RiskLevel,
		ActionTaken:   ActionAllow,
		Reasons:       result.Prediction.Explanation,
		ProcessingID:  ProcessingIDPrefix + strconv.FormatInt(start.UnixMilli(), 36),
		TransactionID: result.Transaction.ID,
	}
	switch result.Transaction.Status {
	case models.StatusBlocked:
		resp.Status = DecisionDeclined
		resp.ActionTaken = ActionBlock
	case models.StatusFlagged:
		resp.Status = DecisionDeclined
		resp.ActionTaken = ActionHold
	}
	if s.integration != nil {
		resp.CallbackSentTo = s.integration.Get().CallbackURL
	}
	resp.LatencyMillis = s.now().Sub(start).Milliseconds()

	return resp, nil
}

func (s *service) Simulate(ctx context.Context, count int) ([]models.Transaction, error) {
	if count == 0 {
		count = DefaultSimulateCount
	}
	if count < 1 || count > MaxSimulateCount {
		return nil, ErrInvalidCount
	}
	if s.generator == nil {
		return nil, errors.New("no transaction generator configured")
	}

	out := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		txn := s.generator.Random(i)
		if _, err := s.Record(ctx, txn); err != nil {
			return out, err
		}
		out = append(out, txn)
	}
	return out, nil
}
