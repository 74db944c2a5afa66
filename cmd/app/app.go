package main

import (
	"github.com/DRSN-tech/seller-backend/internal/app"
)

//	@title			Seller Backend API
//	@version		1.0
//	@description	Бэкенд кабинета продавца: продукты, таксономия, возвраты и споры
//	@BasePath		/api/v1

func main() {
	app.Run()
}
