package http

import "github.com/tradehub-app/tradehub/internal/domain/stats"

type CityCountDTO struct {
	City  string `json:"city"`
	Count int64  `json:"count"`
}

func ToCityCountDTO(cc stats.CityCount) CityCountDTO {
	return CityCountDTO{
		City:  cc.City,
		Count: cc.Count,
	}
}
