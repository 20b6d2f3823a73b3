// File: internal/handler/admin/admin.go
package admin

import "motofix-admin/internal/store"

// 測試可覆寫這些變數
var (
	listServiceRequests = store.ListServiceRequests
	countMechanics      = store.CountMechanics
	listMechanics       = store.ListMechanics
	createMechanic      = store.CreateMechanic
	updateMechanic      = store.UpdateMechanic
	deleteMechanic      = store.DeleteMechanic
	countPayments       = store.CountPayments
	listPayments        = store.ListPayments
	gatherStats         = store.GatherStats
	revenueChart        = store.RevenueChart
)
