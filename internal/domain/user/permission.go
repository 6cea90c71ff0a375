package user

type Permission string

const (
	// Employee Management
	PermissionEmployeeView   Permission = "employee.view"
	PermissionEmployeeManage Permission = "employee.manage"
	PermissionEmployeeDelete Permission = "employee.delete"

	// Attendance Management
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceClock   Permission = "attendance.clock"
	PermissionAttendanceViewAll Permission = "attendance.view_all"

	// Leave Management
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveApprove Permission = "leave.approve"
	PermissionLeaveDelete  Permission = "leave.delete"

	// Performance Management
	PermissionPerformanceViewOwn Permission = "performance.view_own"
	PermissionPerformanceManage  Permission = "performance.manage"

	// Reports & Statistics
	PermissionReportsView Permission = "reports.view"
)

// RolePermissions is the authorization table: one closed allow-list per role.
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionEmployeeView,
		PermissionEmployeeManage,
		PermissionEmployeeDelete,
		PermissionAttendanceViewOwn,
		PermissionAttendanceClock,
		PermissionAttendanceViewAll,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveApprove,
		PermissionLeaveDelete,
		PermissionPerformanceViewOwn,
		PermissionPerformanceManage,
		PermissionReportsView,
	},
	RoleManager: {
		PermissionEmployeeView,
		PermissionEmployeeManage,
		PermissionAttendanceViewOwn,
		PermissionAttendanceClock,
		PermissionAttendanceViewAll,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveApprove,
		PermissionPerformanceViewOwn,
		PermissionPerformanceManage,
		PermissionReportsView,
	},
	RoleEmployee: {
		PermissionEmployeeView,
		PermissionAttendanceViewOwn,
		PermissionAttendanceClock,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionPerformanceViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
