package get_available_slots

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Days < 0 || req.Days > MaxDays {
		return fmt.Errorf("%w: days must be between 1 and %d (0 means the default of 1), got %d", ErrInvalidInput, MaxDays, req.Days)
	}

	return nil
}
