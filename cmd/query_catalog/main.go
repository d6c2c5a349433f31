package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/shopcat-service/internal/transport/grpc/catalog"
)

var (
	addr   = flag.String("addr", "localhost:9090", "gRPC server address")
	method = flag.String("method", "products", "Query to run: products, product or categories")
)

// Usage: query_catalog -method products category=shoes onSale=true page=2
func main() {
	flag.Parse()

	// Connect to gRPC server
	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	client := catalog.NewClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := structpb.NewStruct(parseArgs(flag.Args()))
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	var resp *structpb.Struct
	switch *method {
	case "products":
		resp, err = client.ListProducts(ctx, req)
	case "product":
		resp, err = client.GetProduct(ctx, req)
	case "categories":
		resp, err = client.ListCategories(ctx, req)
	default:
		log.Fatalf("Unknown method %q", *method)
	}
	if err != nil {
		log.Fatalf("Query failed: %v", err)
	}

	out, err := json.MarshalIndent(resp.AsMap(), "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode response: %v", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
}

// parseArgs turns key=value arguments into request fields.
func parseArgs(args []string) map[string]any {
	fields := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			log.Printf("Skipping argument %q, expected key=value", arg)
			continue
		}
		fields[key] = value
	}
	return fields
}
