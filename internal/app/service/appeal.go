package service

import (
	"context"
	"fmt"
	"time"

	"servicedesk/internal/app/ds"

	"github.com/sirupsen/logrus"
)

// Store — возможности хранилища, которые нужны движку заявок.
// Реализуется repository.Repository; в тестах подменяется фейком.
type Store interface {
	CreateAppeal(appeal *ds.Appeal) error
	SaveAppeal(appeal *ds.Appeal) error
	GetAppealByID(id uint) (*ds.Appeal, error)
	FindAppealsByStatus(statusID uint) ([]ds.Appeal, error)
	FindAppealsByStatusAndClient(statusID, clientID uint) ([]ds.Appeal, error)
	FindStatusByName(name ds.StatusName) (*ds.AppealStatus, error)
	GetAllStatuses() ([]ds.AppealStatus, error)
	GetClientByID(id uint) (*ds.Client, error)
	GetStaffByID(id uint) (*ds.Staff, error)
	GetFirstAdmin() (*ds.Admin, error)
}

// Notifier доставляет текстовое сообщение адресату по номеру телефона.
// Доставка best-effort: false означает "не доставлено", ошибкой не является.
type Notifier interface {
	Notify(ctx context.Context, phone, message string) bool
}

// ReportService обеспечивает наличие выгрузки истории заявок клиента
type ReportService interface {
	GetOrCreateReport(ctx context.Context, client *ds.Client, appeals []ds.Appeal) ([]byte, error)
}

// AppealService — движок жизненного цикла заявок:
// создание, переходы, выборки по статусу и побочные эффекты переходов
type AppealService struct {
	store    Store
	notifier Notifier
	reports  ReportService
	// strict включает проверку допустимости перехода по текущему статусу.
	// Исходная система переходы не проверяла, поэтому по умолчанию false.
	strict bool
	now    func() time.Time
}

func NewAppealService(store Store, notifier Notifier, reports ReportService, strict bool) *AppealService {
	return &AppealService{
		store:    store,
		notifier: notifier,
		reports:  reports,
		strict:   strict,
		now:      time.Now,
	}
}

// formatRu форматирует время так же, как toLocaleString("ru") в исходной системе
func formatRu(t time.Time) string {
	return t.Format("02.01.2006, 15:04:05")
}

// CreateAppeal создаёт новую заявку в статусе new и уведомляет администратора
func (s *AppealService) CreateAppeal(ctx context.Context, mechanism, problem, fioClient string, clientID uint) (*ds.Appeal, error) {
	client, err := s.store.GetClientByID(clientID)
	if err != nil {
		return nil, ErrClientNotFound
	}

	status, err := s.store.FindStatusByName(ds.StatusNew)
	if err != nil {
		return nil, ErrStatusNotFound
	}

	appeal := &ds.Appeal{
		Mechanism: mechanism,
		Problem:   problem,
		FioClient: fioClient,
		StatusID:  status.ID,
		Status:    *status,
		DateStart: s.now(),
		ClientID:  &client.ID,
		Client:    client,
	}

	if err := s.store.CreateAppeal(appeal); err != nil {
		return nil, err
	}

	// Адресат уведомления - администратор с наименьшим id
	admin, err := s.store.GetFirstAdmin()
	if err != nil {
		return nil, ErrAdminNotFound
	}

	delivered := s.notifier.Notify(ctx, admin.Phone,
		fmt.Sprintf("Новая заявка №%d от %s", appeal.ID, client.CompanyName))
	if !delivered {
		logrus.Warnf("appeal %d: admin notification not delivered", appeal.ID)
	}

	return appeal, nil
}

// TakeToWork переводит заявку в работу и закрепляет за ней сотрудника
func (s *AppealService) TakeToWork(ctx context.Context, appealID, staffID uint) (*ds.Appeal, error) {
	appeal, err := s.store.GetAppealByID(appealID)
	if err != nil {
		return nil, ErrAppealNotFound
	}

	staff, err := s.store.GetStaffByID(staffID)
	if err != nil {
		return nil, ErrStaffNotFound
	}

	status, err := s.store.FindStatusByName(ds.StatusInProgress)
	if err != nil {
		return nil, ErrStatusNotFound
	}

	if s.strict && appeal.Status.Name != ds.StatusNew {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, appeal.Status.Name, ds.StatusInProgress)
	}

	appeal.StatusID = status.ID
	appeal.Status = *status
	appeal.StaffOpenID = &staff.ID
	appeal.StaffOpen = staff
	appeal.FioStaff = &staff.Fio

	if err := s.store.SaveAppeal(appeal); err != nil {
		return nil, err
	}
	return appeal, nil
}

// CloseAppeal завершает заявку, уведомляет клиента и обеспечивает
// наличие отчёта по всем его завершённым заявкам.
// Уведомление и отчёт - best-effort: их сбой не отменяет закрытие.
func (s *AppealService) CloseAppeal(ctx context.Context, appealID, staffID uint, description, fioStaff string) (*ds.Appeal, error) {
	staff, err := s.store.GetStaffByID(staffID)
	if err != nil {
		return nil, ErrStaffNotFound
	}

	status, err := s.store.FindStatusByName(ds.StatusCompleted)
	if err != nil {
		return nil, ErrStatusNotFound
	}

	appeal, err := s.store.GetAppealByID(appealID)
	if err != nil {
		return nil, ErrAppealNotFound
	}

	if s.strict && appeal.Status.Name != ds.StatusInProgress {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, appeal.Status.Name, ds.StatusCompleted)
	}

	closedAt := s.now()
	appeal.StatusID = status.ID
	appeal.Status = *status
	appeal.StaffCloseID = &staff.ID
	appeal.StaffClose = staff
	appeal.FioStaff = &fioStaff
	appeal.DateClose = &closedAt
	appeal.AppealDesc = &description

	if err := s.store.SaveAppeal(appeal); err != nil {
		return nil, err
	}

	// Заявка уже закрыта; отсутствие владельца - ошибка, но без отката
	if appeal.ClientID == nil {
		return nil, ErrClientNotFound
	}
	client, err := s.store.GetClientByID(*appeal.ClientID)
	if err != nil {
		return nil, ErrClientNotFound
	}

	delivered := s.notifier.Notify(ctx, client.Phone,
		fmt.Sprintf("Закрыта заявка №%d от %s", appeal.ID, client.CompanyName))
	if !delivered {
		logrus.Warnf("appeal %d: client notification not delivered", appeal.ID)
	}

	completed, err := s.store.FindAppealsByStatusAndClient(status.ID, client.ID)
	if err != nil {
		logrus.Warnf("appeal %d: completed appeals lookup failed: %v", appeal.ID, err)
		completed = nil
	}
	if _, err := s.reports.GetOrCreateReport(ctx, client, completed); err != nil {
		logrus.Warnf("appeal %d: report generation failed: %v", appeal.ID, err)
	}

	return appeal, nil
}

// cancelAppeal - чистая функция отмены: по исходной заявке строит
// обновлённую исходную (закрыта как completed) и новую заявку-маркер
// со статусом cancel. Ничего не сохраняет.
func cancelAppeal(original ds.Appeal, client *ds.Client, cancelStatus, completedStatus ds.AppealStatus, now time.Time) (ds.Appeal, ds.Appeal) {
	marker := "Отмена заявки от " + formatRu(original.DateStart)
	cancellation := ds.Appeal{
		Mechanism: "Отмена заявки",
		Problem:   marker,
		FioClient: marker,
		StatusID:  cancelStatus.ID,
		Status:    cancelStatus,
		DateStart: now,
		ClientID:  &client.ID,
		Client:    client,
	}

	desc := "Заявка отменена " + formatRu(now)
	original.StatusID = completedStatus.ID
	original.Status = completedStatus
	original.DateClose = &now
	original.AppealDesc = &desc

	return original, cancellation
}

// CancelAppeal отменяет заявку клиента: исходная закрывается со статусом
// completed, рядом создаётся заявка-маркер со статусом cancel.
// Возвращается обновлённая исходная заявка.
func (s *AppealService) CancelAppeal(ctx context.Context, appealID, clientID uint) (*ds.Appeal, error) {
	client, err := s.store.GetClientByID(clientID)
	if err != nil {
		return nil, ErrClientNotFound
	}

	cancelStatus, err := s.store.FindStatusByName(ds.StatusCancel)
	if err != nil {
		return nil, ErrStatusNotFound
	}
	completedStatus, err := s.store.FindStatusByName(ds.StatusCompleted)
	if err != nil {
		return nil, ErrStatusNotFound
	}

	appeal, err := s.store.GetAppealByID(appealID)
	if err != nil {
		return nil, ErrAppealNotFound
	}

	updated, cancellation := cancelAppeal(*appeal, client, *cancelStatus, *completedStatus, s.now())

	if err := s.store.CreateAppeal(&cancellation); err != nil {
		return nil, err
	}
	if err := s.store.SaveAppeal(&updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// Выборки по статусу. Отсутствие строки статуса в справочнике здесь не
// ошибка, а пустой результат - в отличие от мутирующих операций.

func (s *AppealService) findByStatus(name ds.StatusName) ([]ds.Appeal, error) {
	status, err := s.store.FindStatusByName(name)
	if err != nil {
		return []ds.Appeal{}, nil
	}
	return s.store.FindAppealsByStatus(status.ID)
}

func (s *AppealService) findByStatusAndClient(name ds.StatusName, clientID uint) ([]ds.Appeal, error) {
	status, err := s.store.FindStatusByName(name)
	if err != nil {
		return []ds.Appeal{}, nil
	}
	return s.store.FindAppealsByStatusAndClient(status.ID, clientID)
}

func (s *AppealService) GetNewAppeals() ([]ds.Appeal, error) {
	return s.findByStatus(ds.StatusNew)
}

func (s *AppealService) GetNewAppealsByClient(clientID uint) ([]ds.Appeal, error) {
	return s.findByStatusAndClient(ds.StatusNew, clientID)
}

func (s *AppealService) GetAppealsInProgress() ([]ds.Appeal, error) {
	return s.findByStatus(ds.StatusInProgress)
}

func (s *AppealService) GetAppealsInProgressByClient(clientID uint) ([]ds.Appeal, error) {
	return s.findByStatusAndClient(ds.StatusInProgress, clientID)
}

func (s *AppealService) GetCompletedAppeals() ([]ds.Appeal, error) {
	return s.findByStatus(ds.StatusCompleted)
}

func (s *AppealService) GetCompletedAppealsByClient(clientID uint) ([]ds.Appeal, error) {
	return s.findByStatusAndClient(ds.StatusCompleted, clientID)
}

// GetStatuses возвращает справочник статусов
func (s *AppealService) GetStatuses() ([]ds.AppealStatus, error) {
	return s.store.GetAllStatuses()
}
