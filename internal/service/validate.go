package service

import "strconv"

// parseID разбирает целочисленный идентификатор из пути/тела запроса.
// Принимается только десятичное целое без остатка: "1.5", "abc" и ""
// отклоняются до любого обращения к хранилищу.
func parseID(raw, message string) (int64, *Error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, Validation(message)
	}
	return id, nil
}
