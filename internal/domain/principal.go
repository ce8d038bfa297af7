package domain

import "fmt"

// Role роль аутентифицированного пользователя
type Role string

const (
	RoleClient  Role = "client"
	RoleManager Role = "manager"
)

// ParseRole парсит роль из строки
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleClient:
		return RoleClient, nil
	case RoleManager:
		return RoleManager, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrInputFormat, s)
	}
}

// Capability возможности принципала: Client или Manager(набор управляемых объектов)
// Создается только через ClientCapability и ManagerCapability
type Capability struct {
	role          Role
	managedPlaces map[int64]struct{}
}

// ClientCapability возможности клиента
func ClientCapability() Capability {
	return Capability{role: RoleClient}
}

// ManagerCapability возможности менеджера указанных объектов
func ManagerCapability(placeIDs ...int64) Capability {
	managed := make(map[int64]struct{}, len(placeIDs))
	for _, id := range placeIDs {
		managed[id] = struct{}{}
	}
	return Capability{role: RoleManager, managedPlaces: managed}
}

// Principal аутентифицированный пользователь, каким его передал провайдер идентичности
type Principal struct {
	UserID     int64
	Capability Capability
}

// NewClient принципал-клиент
func NewClient(userID int64) Principal {
	return Principal{UserID: userID, Capability: ClientCapability()}
}

// NewManager принципал-менеджер объектов placeIDs
func NewManager(userID int64, placeIDs ...int64) Principal {
	return Principal{UserID: userID, Capability: ManagerCapability(placeIDs...)}
}

// Role роль принципала
func (p Principal) Role() Role {
	return p.Capability.role
}

// CanManage true, если принципал - менеджер объекта placeID
func (p Principal) CanManage(placeID int64) bool {
	switch p.Capability.role {
	case RoleManager:
		_, ok := p.Capability.managedPlaces[placeID]
		return ok
	case RoleClient:
		return false
	default:
		return false
	}
}

// IsOwner true, если бронирование принадлежит принципалу
func (p Principal) IsOwner(b *Booking) bool {
	return b.UserID == p.UserID
}

// CanView владелец бронирования или менеджер его объекта
func (p Principal) CanView(b *Booking) bool {
	return p.IsOwner(b) || p.CanManage(b.PlaceID)
}

// ActorFor определяет, в какой роли принципал выполняет событие над бронированием
func (p Principal) ActorFor(b *Booking, event BookingEvent) (Actor, error) {
	switch event {
	case EventCancel:
		if p.IsOwner(b) {
			return ActorOwner, nil
		}
		return 0, Reject(ErrPermissionDenied, CodeNotOwner, "отменить бронь может только её владелец")
	case EventConfirm, EventComplete:
		if p.CanManage(b.PlaceID) {
			return ActorManager, nil
		}
		return 0, Reject(ErrPermissionDenied, CodeNotManager, "действие доступно только менеджеру объекта")
	case EventExpire:
		return 0, Reject(ErrPermissionDenied, CodeWrongActor, "автозавершение выполняется только системой")
	default:
		return 0, Reject(ErrInputFormat, CodeInvalidEvent, fmt.Sprintf("неизвестное действие %q", event))
	}
}
