package notify

import (
	"context"
	"errors"
	"testing"

	"servicedesk/internal/app/ds"
)

type fakeDirectory struct {
	clients map[string]*ds.Client
	admins  map[string]*ds.Admin

	linkedClients map[uint]string
	linkedAdmins  map[uint]string
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		clients:       map[string]*ds.Client{},
		admins:        map[string]*ds.Admin{},
		linkedClients: map[uint]string{},
		linkedAdmins:  map[uint]string{},
	}
}

func (d *fakeDirectory) GetClientByPhone(phone string) (*ds.Client, error) {
	c, ok := d.clients[phone]
	if !ok {
		return nil, errors.New("record not found")
	}
	return c, nil
}

func (d *fakeDirectory) GetAdminByPhone(phone string) (*ds.Admin, error) {
	a, ok := d.admins[phone]
	if !ok {
		return nil, errors.New("record not found")
	}
	return a, nil
}

func (d *fakeDirectory) UpdateClientTelegramID(clientID uint, chatID string) error {
	d.linkedClients[clientID] = chatID
	return nil
}

func (d *fakeDirectory) UpdateAdminTelegramID(adminID uint, chatID string) error {
	d.linkedAdmins[adminID] = chatID
	return nil
}

func TestNewTelegramEmptyTokenDisablesGateway(t *testing.T) {
	gw, err := NewTelegram("", newFakeDirectory())
	if err != nil {
		t.Fatalf("NewTelegram: %v", err)
	}
	if gw.bot != nil {
		t.Error("bot must be nil with empty token")
	}

	if gw.Notify(context.Background(), "+79990000001", "привет") {
		t.Error("disabled gateway must report undelivered")
	}

	// Run выключенного шлюза сразу возвращается без ошибки
	if err := gw.Run(context.Background()); err != nil {
		t.Errorf("Run: %v", err)
	}
}

func TestChatIDByPhone(t *testing.T) {
	dir := newFakeDirectory()
	chat := "12345"
	dir.clients["+79990000001"] = &ds.Client{ID: 1, TelegramID: &chat}
	dir.clients["+79990000002"] = &ds.Client{ID: 2}
	adminChat := "67890"
	dir.admins["+79991111111"] = &ds.Admin{ID: 1, TelegramID: &adminChat}

	gw := &Telegram{dir: dir}

	if got := gw.chatIDByPhone("+79990000001"); got != "12345" {
		t.Errorf("linked client chat = %q", got)
	}
	// Клиент найден, но чат не привязан: к администраторам не идём
	if got := gw.chatIDByPhone("+79990000002"); got != "" {
		t.Errorf("unlinked client chat = %q, want empty", got)
	}
	if got := gw.chatIDByPhone("+79991111111"); got != "67890" {
		t.Errorf("admin chat = %q", got)
	}
	if got := gw.chatIDByPhone("+70000000000"); got != "" {
		t.Errorf("unknown phone chat = %q, want empty", got)
	}
}
