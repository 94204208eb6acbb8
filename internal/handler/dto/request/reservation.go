package request

type BookRequest struct {
	VehicleNumber string `json:"vehicle_number" binding:"required"`
}
