package main

import "github.com/tarhget/quotes-backend/internal/app"

func main() {
	app.Run()
}
