// Команда clickconsumer агрегирует события переходов из NATS в реестр кодов.
package main

import (
	"log"

	"github.com/avc-dev/shortlink/internal/app"
)

func main() {
	if err := app.RunClickConsumer(); err != nil {
		log.Fatal(err)
	}
}
