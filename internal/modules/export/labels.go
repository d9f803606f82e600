package export

// Label text per language. The language selector changes presentation
// strings only, never the computed values.

const (
	LangRU = "ru"
	LangEN = "en"
)

var labels = map[string]map[string]string{
	LangEN: {
		"report.revenue":        "Revenue Report",
		"report.occupancy":      "Occupancy Report",
		"report.services":       "Services Report",
		"report.guests":         "Guest Analytics Report",
		"report.invoice":        "Invoice",
		"period":                "Period",
		"accommodation_revenue": "Accommodation revenue",
		"service_revenue":       "Service revenue",
		"total_revenue":         "Total revenue",
		"planned_revenue":       "Planned revenue (bookings)",
		"tax_collected":         "Tax collected (est.)",
		"stays_count":           "Stays",
		"average_stay_value":    "Average stay value",
		"room_type":             "Room type",
		"average_rate":          "Average rate",
		"room":                  "Room",
		"occupied_nights":       "Occupied nights",
		"available_nights":      "Available nights",
		"occupancy_rate":        "Occupancy rate, %",
		"total_days":            "Days in period",
		"service":               "Service",
		"times_ordered":         "Times ordered",
		"popularity_rank":       "Rank",
		"date":                  "Date",
		"order_count":           "Orders",
		"revenue":               "Revenue",
		"total_guests":          "Total guests",
		"new_guests":            "New guests",
		"returning_guests":      "Returning guests",
		"average_stay_duration": "Average stay duration, nights",
		"segment":               "Segment",
		"guest_count":           "Guests",
		"average_spend":         "Average spend",
		"guest":                 "Guest",
		"total_spent":           "Total spent",
		"total_stays":           "Stays",
		"last_seen":             "Last seen",
		"citizenship":           "Citizenship",
		"percentage":            "Share, %",
		"invoice_number":        "Invoice no.",
		"guest_name":            "Guest",
		"check_in":              "Check-in",
		"check_out":             "Check-out",
		"number_of_days":        "Days",
		"daily_rate":            "Daily rate",
		"room_charges":          "Room charges",
		"room_tax_amount":       "Room tax amount",
		"service_charges":       "Service charges",
		"paid_service_charges":  "Paid service charges",
		"unpaid_service_charges": "Unpaid service charges",
		"total":                 "Total",
		"paid_amount":           "Paid",
		"balance_due":           "Balance due",
		"quantity":              "Qty",
		"unit_price":            "Unit price",
	},
	LangRU: {
		"report.revenue":        "Отчёт по выручке",
		"report.occupancy":      "Отчёт по загрузке номеров",
		"report.services":       "Отчёт по услугам",
		"report.guests":         "Отчёт по гостям",
		"report.invoice":        "Счёт",
		"period":                "Период",
		"accommodation_revenue": "Выручка от проживания",
		"service_revenue":       "Выручка от услуг",
		"total_revenue":         "Итого выручка",
		"planned_revenue":       "Плановая выручка (брони)",
		"tax_collected":         "Налог (оценка)",
		"stays_count":           "Проживаний",
		"average_stay_value":    "Средний чек проживания",
		"room_type":             "Тип номера",
		"average_rate":          "Средняя ставка",
		"room":                  "Номер",
		"occupied_nights":       "Занятых ночей",
		"available_nights":      "Доступных ночей",
		"occupancy_rate":        "Загрузка, %",
		"total_days":            "Дней в периоде",
		"service":               "Услуга",
		"times_ordered":         "Заказов",
		"popularity_rank":       "Ранг",
		"date":                  "Дата",
		"order_count":           "Заказы",
		"revenue":               "Выручка",
		"total_guests":          "Всего гостей",
		"new_guests":            "Новые гости",
		"returning_guests":      "Повторные гости",
		"average_stay_duration": "Средняя длительность, ночей",
		"segment":               "Сегмент",
		"guest_count":           "Гостей",
		"average_spend":         "Средние траты",
		"guest":                 "Гость",
		"total_spent":           "Потрачено всего",
		"total_stays":           "Проживаний",
		"last_seen":             "Последний визит",
		"citizenship":           "Гражданство",
		"percentage":            "Доля, %",
		"invoice_number":        "Номер счёта",
		"guest_name":            "Гость",
		"check_in":              "Заезд",
		"check_out":             "Выезд",
		"number_of_days":        "Дней",
		"daily_rate":            "Ставка за сутки",
		"room_charges":          "Проживание",
		"room_tax_amount":       "Налог за проживание",
		"service_charges":       "Услуги",
		"paid_service_charges":  "Оплаченные услуги",
		"unpaid_service_charges": "Неоплаченные услуги",
		"total":                 "Итого",
		"paid_amount":           "Оплачено",
		"balance_due":           "К оплате",
		"quantity":              "Кол-во",
		"unit_price":            "Цена",
	},
}

type labelSet struct {
	lang string
}

func (l labelSet) get(key string) string {
	if v, ok := labels[l.lang][key]; ok {
		return v
	}
	return key
}
