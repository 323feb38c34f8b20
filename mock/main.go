package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
)

// A Gemini-compatible stub for local development:
//
//	(cd mock && go run . 8081)
//	GEMINI_BASE_URL=http://localhost:8081 GEMINI_API_KEY=dev go run ./cmd/flightlens
func main() {
	// Default port
	port := "8081"

	// Check if port is provided as command line argument
	if len(os.Args) > 1 {
		port = os.Args[1]
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /{version}/models/{call}", GenerateContentHandler)

	addr := fmt.Sprintf(":%s", port)
	fmt.Printf("Gemini mock server running on port %s...\n", port)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}
