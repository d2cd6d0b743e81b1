package user

// Operation names a privileged action checked against the caller's role.
// Every lifecycle command consults Can instead of embedding role checks,
// so the authorization matrix lives in exactly one place.
type Operation string

const (
	OpRoomCreate Operation = "room.create"
	OpRoomUpdate Operation = "room.update"
	OpRoomDelete Operation = "room.delete"

	OpBookingCreate Operation = "booking.create"
	OpBookingUpdate Operation = "booking.update"
	OpBookingClose  Operation = "booking.close"

	OpTaskCreate  Operation = "task.create"
	OpTaskAdvance Operation = "task.advance"
	OpTaskDelete  Operation = "task.delete"

	OpCustomerWrite Operation = "customer.write"
	OpFoodWrite     Operation = "food.write"
)

var policy = map[Operation][]Role{
	OpRoomCreate: {RoleAdmin, RoleManager},
	OpRoomUpdate: {RoleAdmin, RoleManager},
	OpRoomDelete: {RoleAdmin, RoleManager},

	OpBookingCreate: {RoleAdmin, RoleManager, RoleStaff},
	OpBookingUpdate: {RoleAdmin, RoleManager, RoleStaff},
	OpBookingClose:  {RoleAdmin, RoleManager, RoleStaff},

	OpTaskCreate:  {RoleAdmin, RoleManager, RoleStaff},
	OpTaskAdvance: {RoleAdmin, RoleManager, RoleStaff},
	// Only admins may remove cleaning records.
	OpTaskDelete: {RoleAdmin},

	OpCustomerWrite: {RoleAdmin, RoleManager},
	OpFoodWrite:     {RoleAdmin, RoleManager},
}

func Can(role Role, op Operation) bool {
	allowed, ok := policy[op]
	if !ok {
		return false
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// SeesAllRecords reports whether the role reads the whole record set.
// Other roles only see records they created.
func (r Role) SeesAllRecords() bool {
	return r == RoleAdmin || r == RoleManager
}
