package stats

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/buildestate/backend/constant"
	"github.com/buildestate/backend/model"
	appointmentrepo "github.com/buildestate/backend/repository/appointment"
	propertyrepo "github.com/buildestate/backend/repository/property"
	statsrepo "github.com/buildestate/backend/repository/stats"
	userrepo "github.com/buildestate/backend/repository/user"
	"github.com/buildestate/backend/utils/errors"
	"github.com/buildestate/backend/utils/logger"
)

// propertyViewPrefix matches the endpoints counted as listing views.
const propertyViewPrefix = "/api/properties/single/"

// viewsWindowDays is the span of the dashboard views chart.
const viewsWindowDays = 30

const recentActivityLimit = 5

type StatsApp interface {
	Record(ctx context.Context, entry *model.StatsEntity) error
	AdminDashboard(ctx context.Context) (*model.AdminStats, error)
}

type statsAppImpl struct {
	statsRepo       statsrepo.StatsRepository
	propertyRepo    propertyrepo.PropertyRepository
	userRepo        userrepo.UserRepository
	appointmentRepo appointmentrepo.AppointmentRepository
}

func NewStatsApp(statsRepo statsrepo.StatsRepository, propertyRepo propertyrepo.PropertyRepository, userRepo userrepo.UserRepository, appointmentRepo appointmentrepo.AppointmentRepository) StatsApp {
	return &statsAppImpl{
		statsRepo:       statsRepo,
		propertyRepo:    propertyRepo,
		userRepo:        userRepo,
		appointmentRepo: appointmentRepo,
	}
}

// Record appends one request telemetry row. Called off the request path;
// failures are logged, never surfaced.
func (s *statsAppImpl) Record(ctx context.Context, entry *model.StatsEntity) error {
	if err := s.statsRepo.Create(ctx, entry); err != nil {
		logger.Error("[RecordStats] err statsRepo.Create", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *statsAppImpl) AdminDashboard(ctx context.Context) (*model.AdminStats, error) {
	totalProperties, err := s.propertyRepo.Count(ctx, nil)
	if err != nil {
		logger.Error("[AdminDashboard] err propertyRepo.Count", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	activeListings, err := s.propertyRepo.Count(ctx, &model.PropertyFilter{Status: constant.PropertyStatusActive})
	if err != nil {
		logger.Error("[AdminDashboard] err propertyRepo.Count active", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		logger.Error("[AdminDashboard] err userRepo.Count", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	pendingAppointments, err := s.appointmentRepo.Count(ctx, &model.AppointmentFilter{Status: constant.AppointmentStatusPending})
	if err != nil {
		logger.Error("[AdminDashboard] err appointmentRepo.Count", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	activity, err := s.recentActivity(ctx)
	if err != nil {
		return nil, err
	}

	viewsData, err := s.viewsData(ctx)
	if err != nil {
		return nil, err
	}

	revenue, err := s.propertyRepo.SumPrices(ctx)
	if err != nil {
		logger.Error("[AdminDashboard] err propertyRepo.SumPrices", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AdminStats{
		TotalProperties:     totalProperties,
		ActiveListings:      activeListings,
		TotalUsers:          totalUsers,
		PendingAppointments: pendingAppointments,
		RecentActivity:      activity,
		ViewsData:           viewsData,
		Revenue:             revenue,
	}, nil
}

// recentActivity merges the latest property listings and appointments
// into one feed, newest first.
func (s *statsAppImpl) recentActivity(ctx context.Context) ([]model.ActivityItem, error) {
	properties, err := s.propertyRepo.FindRecent(ctx, recentActivityLimit)
	if err != nil {
		logger.Error("[AdminDashboard] err propertyRepo.FindRecent", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	appointments, err := s.appointmentRepo.FindRecent(ctx, recentActivityLimit)
	if err != nil {
		logger.Error("[AdminDashboard] err appointmentRepo.FindRecent", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items := make([]model.ActivityItem, 0, len(properties)+len(appointments))
	for i := range properties {
		items = append(items, model.ActivityItem{
			Type:        "property",
			Description: fmt.Sprintf("New property listed: %s", properties[i].Title),
			Timestamp:   properties[i].CreatedAt,
		})
	}
	for i := range appointments {
		title := "a property"
		if appointments[i].PropertyTitle.Valid {
			title = appointments[i].PropertyTitle.String
		}
		items = append(items, model.ActivityItem{
			Type:        "appointment",
			Description: fmt.Sprintf("Viewing scheduled for %s", title),
			Timestamp:   appointments[i].CreatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	if len(items) > 2*recentActivityLimit {
		items = items[:2*recentActivityLimit]
	}
	return items, nil
}

// viewsData buckets listing-detail hits per day over the chart window.
func (s *statsAppImpl) viewsData(ctx context.Context) (model.ViewsData, error) {
	now := time.Now()
	since := now.AddDate(0, 0, -(viewsWindowDays - 1))
	start := time.Date(since.Year(), since.Month(), since.Day(), 0, 0, 0, 0, since.Location())

	stamps, err := s.statsRepo.ViewTimestampsSince(ctx, propertyViewPrefix, start)
	if err != nil {
		logger.Error("[AdminDashboard] err statsRepo.ViewTimestampsSince", zap.String("error", err.Error()))
		return model.ViewsData{}, errors.SetCustomError(constant.ErrInternal)
	}

	labels := make([]string, viewsWindowDays)
	data := make([]int64, viewsWindowDays)
	for i := 0; i < viewsWindowDays; i++ {
		labels[i] = start.AddDate(0, 0, i).Format("Jan 2")
	}
	for _, ts := range stamps {
		idx := int(ts.Sub(start).Hours() / 24)
		if idx >= 0 && idx < viewsWindowDays {
			data[idx]++
		}
	}

	return model.ViewsData{
		Labels: labels,
		Datasets: []model.ViewsDataset{{
			Label:           "Property Views",
			Data:            data,
			BorderColor:     "#4F46E5",
			BackgroundColor: "rgba(79, 70, 229, 0.1)",
			Tension:         0.4,
			Fill:            true,
		}},
	}, nil
}
