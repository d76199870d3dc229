package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"servicedesk/internal/app/ds"
)

// fakeStore — хранилище в памяти для тестов движка заявок
type fakeStore struct {
	appeals  map[uint]*ds.Appeal
	statuses map[ds.StatusName]*ds.AppealStatus
	clients  map[uint]*ds.Client
	staff    map[uint]*ds.Staff
	admins   []*ds.Admin
	nextID   uint

	createCalls int
	saveCalls   int
}

func newFakeStore() *fakeStore {
	s := &fakeStore{
		appeals:  map[uint]*ds.Appeal{},
		statuses: map[ds.StatusName]*ds.AppealStatus{},
		clients:  map[uint]*ds.Client{},
		staff:    map[uint]*ds.Staff{},
		nextID:   1,
	}
	for i, name := range ds.AllStatuses() {
		s.statuses[name] = &ds.AppealStatus{ID: uint(i + 1), Name: name}
	}
	return s
}

func (s *fakeStore) CreateAppeal(appeal *ds.Appeal) error {
	appeal.ID = s.nextID
	s.nextID++
	cp := *appeal
	s.appeals[appeal.ID] = &cp
	s.createCalls++
	return nil
}

func (s *fakeStore) SaveAppeal(appeal *ds.Appeal) error {
	cp := *appeal
	s.appeals[appeal.ID] = &cp
	s.saveCalls++
	return nil
}

func (s *fakeStore) GetAppealByID(id uint) (*ds.Appeal, error) {
	a, ok := s.appeals[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *a
	return &cp, nil
}

func (s *fakeStore) FindAppealsByStatus(statusID uint) ([]ds.Appeal, error) {
	result := []ds.Appeal{}
	for _, a := range s.appeals {
		if a.StatusID == statusID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (s *fakeStore) FindAppealsByStatusAndClient(statusID, clientID uint) ([]ds.Appeal, error) {
	result := []ds.Appeal{}
	for _, a := range s.appeals {
		if a.StatusID == statusID && a.ClientID != nil && *a.ClientID == clientID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (s *fakeStore) GetAllStatuses() ([]ds.AppealStatus, error) {
	result := []ds.AppealStatus{}
	for _, name := range ds.AllStatuses() {
		if st, ok := s.statuses[name]; ok {
			result = append(result, *st)
		}
	}
	return result, nil
}

func (s *fakeStore) FindStatusByName(name ds.StatusName) (*ds.AppealStatus, error) {
	st, ok := s.statuses[name]
	if !ok {
		return nil, errors.New("record not found")
	}
	return st, nil
}

func (s *fakeStore) GetClientByID(id uint) (*ds.Client, error) {
	c, ok := s.clients[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return c, nil
}

func (s *fakeStore) GetStaffByID(id uint) (*ds.Staff, error) {
	st, ok := s.staff[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return st, nil
}

func (s *fakeStore) GetFirstAdmin() (*ds.Admin, error) {
	if len(s.admins) == 0 {
		return nil, errors.New("record not found")
	}
	first := s.admins[0]
	for _, a := range s.admins[1:] {
		if a.ID < first.ID {
			first = a
		}
	}
	return first, nil
}

// fakeNotifier записывает отправленные сообщения
type fakeNotifier struct {
	delivered bool
	messages  []string
	phones    []string
}

func (n *fakeNotifier) Notify(_ context.Context, phone, message string) bool {
	n.phones = append(n.phones, phone)
	n.messages = append(n.messages, message)
	return n.delivered
}

// fakeReports считает обращения к генератору отчётов
type fakeReports struct {
	calls   int
	lastLen int
	err     error
}

func (r *fakeReports) GetOrCreateReport(_ context.Context, _ *ds.Client, appeals []ds.Appeal) ([]byte, error) {
	r.calls++
	r.lastLen = len(appeals)
	if r.err != nil {
		return nil, r.err
	}
	return []byte("xlsx"), nil
}

func fixedTime() time.Time {
	return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
}

func newTestService(store *fakeStore, notifier *fakeNotifier, reports *fakeReports, strict bool) *AppealService {
	svc := NewAppealService(store, notifier, reports, strict)
	svc.now = fixedTime
	return svc
}

func seedClient(store *fakeStore, id uint) *ds.Client {
	c := &ds.Client{ID: id, Login: fmt.Sprintf("client%d", id), Phone: "+79990000001", CompanyName: "ООО Ромашка"}
	store.clients[id] = c
	return c
}

func seedStaff(store *fakeStore, id uint, fio string) *ds.Staff {
	st := &ds.Staff{ID: id, Login: fmt.Sprintf("staff%d", id), Fio: fio}
	store.staff[id] = st
	return st
}

func TestCreateAppeal(t *testing.T) {
	store := newFakeStore()
	notifier := &fakeNotifier{delivered: true}
	svc := newTestService(store, notifier, &fakeReports{}, false)

	seedClient(store, 1)
	store.admins = append(store.admins, &ds.Admin{ID: 5, Phone: "+79991112233"}, &ds.Admin{ID: 2, Phone: "+79994445566"})

	appeal, err := svc.CreateAppeal(context.Background(), "Станок ЧПУ", "Не включается", "Иванов И.И.", 1)
	if err != nil {
		t.Fatalf("CreateAppeal: %v", err)
	}

	if appeal.Status.Name != ds.StatusNew {
		t.Errorf("status = %q, want new", appeal.Status.Name)
	}
	if appeal.DateClose != nil {
		t.Errorf("date_close must be nil for a new appeal")
	}
	if !appeal.DateStart.Equal(fixedTime()) {
		t.Errorf("date_start = %v", appeal.DateStart)
	}
	if appeal.ClientID == nil || *appeal.ClientID != 1 {
		t.Errorf("client_id not set")
	}

	// Уведомление уходит администратору с наименьшим id
	if len(notifier.phones) != 1 || notifier.phones[0] != "+79994445566" {
		t.Errorf("notified phones = %v, want first admin", notifier.phones)
	}
	want := fmt.Sprintf("Новая заявка №%d от ООО Ромашка", appeal.ID)
	if notifier.messages[0] != want {
		t.Errorf("message = %q, want %q", notifier.messages[0], want)
	}
}

func TestCreateAppealMissingClient(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeNotifier{}, &fakeReports{}, false)

	_, err := svc.CreateAppeal(context.Background(), "Пресс", "Шумит", "Петров", 42)
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("err = %v, want ErrClientNotFound", err)
	}
	if store.createCalls != 0 {
		t.Errorf("appeal persisted despite missing client")
	}
}

func TestCreateAppealMissingAdminAfterPersist(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeNotifier{}, &fakeReports{}, false)
	seedClient(store, 1)

	_, err := svc.CreateAppeal(context.Background(), "Пресс", "Шумит", "Петров", 1)
	if !errors.Is(err, ErrAdminNotFound) {
		t.Fatalf("err = %v, want ErrAdminNotFound", err)
	}
	// Заявка уже записана: адресат уведомления ищется после сохранения
	if store.createCalls != 1 {
		t.Errorf("createCalls = %d, want 1", store.createCalls)
	}
}

func TestCreateAppealUndeliveredNotification(t *testing.T) {
	store := newFakeStore()
	notifier := &fakeNotifier{delivered: false}
	svc := newTestService(store, notifier, &fakeReports{}, false)
	seedClient(store, 1)
	store.admins = append(store.admins, &ds.Admin{ID: 1, Phone: "+79990000000"})

	if _, err := svc.CreateAppeal(context.Background(), "Кран", "Скрипит", "Сидоров", 1); err != nil {
		t.Fatalf("undelivered notification must not fail creation: %v", err)
	}
}

func TestTakeToWork(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeNotifier{}, &fakeReports{}, false)
	client := seedClient(store, 1)
	staff := seedStaff(store, 7, "Кузнецов К.К.")

	appeal := &ds.Appeal{
		Mechanism: "Станок",
		Problem:   "Вибрация",
		FioClient: "Иванов",
		StatusID:  store.statuses[ds.StatusNew].ID,
		Status:    *store.statuses[ds.StatusNew],
		DateStart: fixedTime(),
		ClientID:  &client.ID,
	}
	store.CreateAppeal(appeal)

	got, err := svc.TakeToWork(context.Background(), appeal.ID, staff.ID)
	if err != nil {
		t.Fatalf("TakeToWork: %v", err)
	}
	if got.Status.Name != ds.StatusInProgress {
		t.Errorf("status = %q, want in_progress", got.Status.Name)
	}
	if got.StaffOpenID == nil || *got.StaffOpenID != 7 {
		t.Errorf("staff_open_id not set")
	}
	if got.FioStaff == nil || *got.FioStaff != "Кузнецов К.К." {
		t.Errorf("fio_staff = %v", got.FioStaff)
	}
	if got.DateClose != nil {
		t.Errorf("date_close must stay nil while in progress")
	}
}

// Два сотрудника берут одну заявку: без strict-режима проверки нет,
// запись перезатирается — побеждает последний
func TestTakeToWorkLastWriterWins(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeNotifier{}, &fakeReports{}, false)
	client := seedClient(store, 1)
	first := seedStaff(store, 1, "Первый")
	second := seedStaff(store, 2, "Второй")

	appeal := &ds.Appeal{
		StatusID:  store.statuses[ds.StatusNew].ID,
		Status:    *store.statuses[ds.StatusNew],
		DateStart: fixedTime(),
		ClientID:  &client.ID,
	}
	store.CreateAppeal(appeal)

	if _, err := svc.TakeToWork(context.Background(), appeal.ID, first.ID); err != nil {
		t.Fatalf("first TakeToWork: %v", err)
	}
	if _, err := svc.TakeToWork(context.Background(), appeal.ID, second.ID); err != nil {
		t.Fatalf("second TakeToWork: %v", err)
	}

	saved, _ := store.GetAppealByID(appeal.ID)
	if saved.StaffOpenID == nil || *saved.StaffOpenID != second.ID {
		t.Errorf("staff_open_id = %v, want последний сотрудник", saved.StaffOpenID)
	}
}

func TestTakeToWorkStrictRejectsTerminal(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeNotifier{}, &fakeReports{}, true)
	client := seedClient(store, 1)
	seedStaff(store, 1, "Первый")

	appeal := &ds.Appeal{
		StatusID:  store.statuses[ds.StatusCompleted].ID,
		Status:    *store.statuses[ds.StatusCompleted],
		DateStart: fixedTime(),
		ClientID:  &client.ID,
	}
	store.CreateAppeal(appeal)

	_, err := svc.TakeToWork(context.Background(), appeal.ID, 1)
	if !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("err = %v, want ErrIllegalTransition", err)
	}
}

func TestCloseAppeal(t *testing.T) {
	store := newFakeStore()
	notifier := &fakeNotifier{delivered: true}
	reports := &fakeReports{}
	svc := newTestService(store, notifier, reports, false)
	client := seedClient(store, 1)
	staff := seedStaff(store, 3, "Кузнецов")

	appeal := &ds.Appeal{
		StatusID:  store.statuses[ds.StatusInProgress].ID,
		Status:    *store.statuses[ds.StatusInProgress],
		DateStart: fixedTime().Add(-time.Hour),
		ClientID:  &client.ID,
	}
	store.CreateAppeal(appeal)

	got, err := svc.CloseAppeal(context.Background(), appeal.ID, staff.ID, "Заменён подшипник", "Кузнецов К.К.")
	if err != nil {
		t.Fatalf("CloseAppeal: %v", err)
	}

	if got.Status.Name != ds.StatusCompleted {
		t.Errorf("status = %q, want completed", got.Status.Name)
	}
	if got.DateClose == nil || !got.DateClose.Equal(fixedTime()) {
		t.Errorf("date_close = %v", got.DateClose)
	}
	if got.AppealDesc == nil || *got.AppealDesc != "Заменён подшипник" {
		t.Errorf("appeal_desc = %v", got.AppealDesc)
	}
	if got.FioStaff == nil || *got.FioStaff != "Кузнецов К.К." {
		t.Errorf("fio_staff = %v", got.FioStaff)
	}
	if got.StaffCloseID == nil || *got.StaffCloseID != 3 {
		t.Errorf("staff_close_id not set")
	}

	// Клиент уведомлён, отчёт собран по завершённым заявкам клиента
	if len(notifier.messages) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notifier.messages))
	}
	want := fmt.Sprintf("Закрыта заявка №%d от ООО Ромашка", appeal.ID)
	if notifier.messages[0] != want {
		t.Errorf("message = %q, want %q", notifier.messages[0], want)
	}
	if notifier.phones[0] != client.Phone {
		t.Errorf("notified phone = %q, want client's", notifier.phones[0])
	}
	if reports.calls != 1 {
		t.Errorf("report calls = %d, want 1", reports.calls)
	}
	if reports.lastLen != 1 {
		t.Errorf("report got %d appeals, want 1", reports.lastLen)
	}
}

func TestCloseAppealSideEffectsBestEffort(t *testing.T) {
	store := newFakeStore()
	notifier := &fakeNotifier{delivered: false}
	reports := &fakeReports{err: errors.New("minio down")}
	svc := newTestService(store, notifier, reports, false)
	client := seedClient(store, 1)
	seedStaff(store, 1, "Кузнецов")

	appeal := &ds.Appeal{
		StatusID:  store.statuses[ds.StatusInProgress].ID,
		Status:    *store.statuses[ds.StatusInProgress],
		DateStart: fixedTime(),
		ClientID:  &client.ID,
	}
	store.CreateAppeal(appeal)

	// И недоставка, и сбой отчёта не отменяют закрытие
	got, err := svc.CloseAppeal(context.Background(), appeal.ID, 1, "Готово", "Кузнецов")
	if err != nil {
		t.Fatalf("CloseAppeal: %v", err)
	}
	if got.Status.Name != ds.StatusCompleted {
		t.Errorf("status = %q", got.Status.Name)
	}
	if reports.calls != 1 {
		t.Errorf("report calls = %d, want 1", reports.calls)
	}
}

func TestCloseAppealOwnerlessPersistsThenFails(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeNotifier{}, &fakeReports{}, false)
	seedStaff(store, 1, "Кузнецов")

	appeal := &ds.Appeal{
		StatusID:  store.statuses[ds.StatusInProgress].ID,
		Status:    *store.statuses[ds.StatusInProgress],
		DateStart: fixedTime(),
	}
	store.CreateAppeal(appeal)

	_, err := svc.CloseAppeal(context.Background(), appeal.ID, 1, "Готово", "Кузнецов")
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("err = %v, want ErrClientNotFound", err)
	}

	// Закрытие уже записано, ошибка про владельца его не откатывает
	saved, _ := store.GetAppealByID(appeal.ID)
	if saved.Status.Name != ds.StatusCompleted {
		t.Errorf("status = %q, want completed", saved.Status.Name)
	}
}

func TestCancelAppeal(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeNotifier{}, &fakeReports{}, false)
	client := seedClient(store, 1)

	started := time.Date(2024, 2, 1, 9, 15, 30, 0, time.UTC)
	appeal := &ds.Appeal{
		Mechanism: "Конвейер",
		Problem:   "Остановился",
		FioClient: "Иванов",
		StatusID:  store.statuses[ds.StatusNew].ID,
		Status:    *store.statuses[ds.StatusNew],
		DateStart: started,
		ClientID:  &client.ID,
	}
	store.CreateAppeal(appeal)

	got, err := svc.CancelAppeal(context.Background(), appeal.ID, client.ID)
	if err != nil {
		t.Fatalf("CancelAppeal: %v", err)
	}

	// Исходная заявка закрыта со статусом completed
	if got.ID != appeal.ID {
		t.Errorf("returned appeal id = %d, want original %d", got.ID, appeal.ID)
	}
	if got.Status.Name != ds.StatusCompleted {
		t.Errorf("original status = %q, want completed", got.Status.Name)
	}
	if got.DateClose == nil || !got.DateClose.Equal(fixedTime()) {
		t.Errorf("date_close = %v", got.DateClose)
	}
	if got.AppealDesc == nil || *got.AppealDesc != "Заявка отменена 15.03.2024, 10:30:00" {
		t.Errorf("appeal_desc = %v", got.AppealDesc)
	}

	// Рядом создана заявка-маркер со статусом cancel
	if len(store.appeals) != 2 {
		t.Fatalf("appeals in store = %d, want 2", len(store.appeals))
	}
	var marker *ds.Appeal
	for _, a := range store.appeals {
		if a.ID != appeal.ID {
			marker = a
		}
	}
	if marker.Status.Name != ds.StatusCancel {
		t.Errorf("marker status = %q, want cancel", marker.Status.Name)
	}
	if marker.Mechanism != "Отмена заявки" {
		t.Errorf("marker mechanism = %q", marker.Mechanism)
	}
	wantRef := "Отмена заявки от 01.02.2024, 09:15:30"
	if marker.Problem != wantRef {
		t.Errorf("marker problem = %q, want %q", marker.Problem, wantRef)
	}
	if marker.FioClient != wantRef {
		t.Errorf("marker fio_client = %q, want %q", marker.FioClient, wantRef)
	}
	if marker.ClientID == nil || *marker.ClientID != client.ID {
		t.Errorf("marker client_id = %v", marker.ClientID)
	}
}

func TestCancelAppealPure(t *testing.T) {
	client := &ds.Client{ID: 9}
	cancelSt := ds.AppealStatus{ID: 4, Name: ds.StatusCancel}
	completedSt := ds.AppealStatus{ID: 3, Name: ds.StatusCompleted}
	started := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)

	original := ds.Appeal{ID: 11, DateStart: started, StatusID: 1}

	updated, cancellation := cancelAppeal(original, client, cancelSt, completedSt, now)

	if updated.StatusID != completedSt.ID {
		t.Errorf("updated status = %d", updated.StatusID)
	}
	if updated.DateClose == nil || !updated.DateClose.Equal(now) {
		t.Errorf("updated date_close = %v", updated.DateClose)
	}
	if *updated.AppealDesc != "Заявка отменена 03.01.2024, 12:00:00" {
		t.Errorf("appeal_desc = %q", *updated.AppealDesc)
	}
	if cancellation.ID != 0 {
		t.Errorf("cancellation must be a new record, got id %d", cancellation.ID)
	}
	if !strings.HasPrefix(cancellation.Problem, "Отмена заявки от ") {
		t.Errorf("cancellation problem = %q", cancellation.Problem)
	}
	if !cancellation.DateStart.Equal(now) {
		t.Errorf("cancellation date_start = %v", cancellation.DateStart)
	}
}

func TestQueriesByStatusAndClient(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeNotifier{}, &fakeReports{}, false)
	first := seedClient(store, 1)
	second := seedClient(store, 2)

	mk := func(st ds.StatusName, clientID *uint) {
		store.CreateAppeal(&ds.Appeal{
			StatusID:  store.statuses[st].ID,
			Status:    *store.statuses[st],
			DateStart: fixedTime(),
			ClientID:  clientID,
		})
	}
	mk(ds.StatusNew, &first.ID)
	mk(ds.StatusNew, &second.ID)
	mk(ds.StatusInProgress, &first.ID)
	mk(ds.StatusCompleted, &first.ID)

	all, err := svc.GetNewAppeals()
	if err != nil {
		t.Fatalf("GetNewAppeals: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("new appeals = %d, want 2", len(all))
	}

	mine, err := svc.GetNewAppealsByClient(first.ID)
	if err != nil {
		t.Fatalf("GetNewAppealsByClient: %v", err)
	}
	if len(mine) != 1 {
		t.Errorf("client's new appeals = %d, want 1", len(mine))
	}

	inProgress, _ := svc.GetAppealsInProgressByClient(first.ID)
	if len(inProgress) != 1 {
		t.Errorf("client's in-progress = %d, want 1", len(inProgress))
	}
	completed, _ := svc.GetCompletedAppealsByClient(second.ID)
	if len(completed) != 0 {
		t.Errorf("second client completed = %d, want 0", len(completed))
	}
}

// Отсутствие строки статуса в справочнике: выборки возвращают пустой
// список без ошибки, мутирующие операции падают
func TestMissingStatusAsymmetry(t *testing.T) {
	store := newFakeStore()
	delete(store.statuses, ds.StatusNew)
	svc := newTestService(store, &fakeNotifier{}, &fakeReports{}, false)
	seedClient(store, 1)

	appeals, err := svc.GetNewAppeals()
	if err != nil {
		t.Fatalf("GetNewAppeals with missing status: %v", err)
	}
	if appeals == nil || len(appeals) != 0 {
		t.Errorf("appeals = %v, want empty slice", appeals)
	}

	_, err = svc.CreateAppeal(context.Background(), "Станок", "Шумит", "Иванов", 1)
	if !errors.Is(err, ErrStatusNotFound) {
		t.Fatalf("CreateAppeal err = %v, want ErrStatusNotFound", err)
	}
}

// Полный жизненный цикл: создание, принятие, закрытие
func TestAppealLifecycle(t *testing.T) {
	store := newFakeStore()
	notifier := &fakeNotifier{delivered: true}
	reports := &fakeReports{}
	svc := newTestService(store, notifier, reports, true)
	client := seedClient(store, 1)
	staff := seedStaff(store, 1, "Кузнецов К.К.")
	store.admins = append(store.admins, &ds.Admin{ID: 1, Phone: "+79991234567"})

	appeal, err := svc.CreateAppeal(context.Background(), "Пресс", "Течь масла", "Иванов И.И.", client.ID)
	if err != nil {
		t.Fatalf("CreateAppeal: %v", err)
	}

	if list, _ := svc.GetNewAppealsByClient(client.ID); len(list) != 1 {
		t.Errorf("new appeals for client = %d, want 1", len(list))
	}

	if _, err := svc.TakeToWork(context.Background(), appeal.ID, staff.ID); err != nil {
		t.Fatalf("TakeToWork: %v", err)
	}

	if list, _ := svc.GetNewAppeals(); len(list) != 0 {
		t.Errorf("new appeals after take = %d, want 0", len(list))
	}
	if list, _ := svc.GetAppealsInProgress(); len(list) != 1 {
		t.Errorf("in-progress appeals = %d, want 1", len(list))
	}

	closed, err := svc.CloseAppeal(context.Background(), appeal.ID, staff.ID, "Заменена прокладка", staff.Fio)
	if err != nil {
		t.Fatalf("CloseAppeal: %v", err)
	}
	if closed.Status.Name != ds.StatusCompleted {
		t.Errorf("final status = %q", closed.Status.Name)
	}
	if closed.AppealDesc == nil || *closed.AppealDesc != "Заменена прокладка" {
		t.Errorf("appeal_desc = %v, want verbatim description", closed.AppealDesc)
	}

	if list, _ := svc.GetCompletedAppeals(); len(list) != 1 {
		t.Errorf("completed appeals = %d, want 1", len(list))
	}

	// Два уведомления: администратору о новой, клиенту о закрытой
	if len(notifier.messages) != 2 {
		t.Fatalf("notifications = %d, want 2", len(notifier.messages))
	}
	if reports.calls != 1 {
		t.Errorf("report calls = %d, want 1", reports.calls)
	}

	// Повторное закрытие в strict-режиме запрещено
	if _, err := svc.CloseAppeal(context.Background(), appeal.ID, staff.ID, "Ещё раз", staff.Fio); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("repeated close err = %v, want ErrIllegalTransition", err)
	}
}
