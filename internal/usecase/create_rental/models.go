package create_rental

import "time"

// Request модель запроса на создание аренды
type Request struct {
	CustomerID int64     // ID клиента
	VehicleID  int64     // ID автомобиля
	StartDate  time.Time // Дата начала аренды (включительно)
	EndDate    time.Time // Дата окончания аренды (включительно)
}

// Response модель ответа с созданной арендой
type Response struct {
	ID         int64     // ID созданной аренды
	CustomerID int64     // ID клиента
	VehicleID  int64     // ID автомобиля
	StartDate  time.Time // Дата начала
	EndDate    time.Time // Дата окончания
	Days       int       // Количество дней аренды (обе границы включительно)
	TotalCost  float64   // Итоговая стоимость
	Policy     string    // Применённая ценовая политика
	Status     string    // Статус аренды

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
