package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/domain/model"
	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/infra/db"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var banner = strings.Repeat("=", 50)

func main() {
	_ = godotenv.Load()

	gormDB, err := db.Connect()
	if err != nil {
		fmt.Fprintln(os.Stderr, "db connect failed:", err)
		os.Exit(1)
	}
	if err := gormDB.AutoMigrate(
		&model.Customer{},
		&model.Product{},
		&model.Order{},
		&model.StockAdjustment{},
	); err != nil {
		fmt.Fprintln(os.Stderr, "migrate failed:", err)
		os.Exit(1)
	}

	fmt.Println(banner)
	fmt.Println("Starting database seeding...")
	fmt.Println(banner)

	if err := seed(gormDB); err != nil {
		fmt.Fprintln(os.Stderr, "seeding failed:", err)
		os.Exit(1)
	}
}

func seed(gormDB *gorm.DB) error {
	return gormDB.Transaction(func(tx *gorm.DB) error {
		//入れ直しなので子テーブルから順に消す
		fmt.Println("Clearing existing data...")
		for _, stmt := range []string{
			"DELETE FROM order_products",
			"DELETE FROM stock_adjustments",
			"DELETE FROM orders",
			"DELETE FROM products",
			"DELETE FROM customers",
		} {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		fmt.Println("Database cleared!")

		fmt.Println("Seeding customers...")
		customers := []model.Customer{
			{Name: "John Doe", Email: "john.doe@example.com", Phone: "+12345678901"},
			{Name: "Jane Smith", Email: "jane.smith@example.com", Phone: "+19876543210"},
			{Name: "Bob Johnson", Email: "bob.johnson@example.com", Phone: "555-123-4567"},
			{Name: "Alice Brown", Email: "alice.brown@example.com"},
			{Name: "Charlie Wilson", Email: "charlie.wilson@example.com", Phone: "+441234567890"},
		}
		for i := range customers {
			if err := tx.Create(&customers[i]).Error; err != nil {
				return err
			}
			fmt.Printf("  Created customer: %s\n", customers[i].Name)
		}
		fmt.Printf("Created %d customers\n", len(customers))

		fmt.Println("Seeding products...")
		products := []model.Product{
			{Name: "Laptop Pro", Description: "High-performance laptop", Price: decimal.NewFromFloat(1299.99), Stock: 25},
			{Name: "Smartphone X", Description: "Latest smartphone model", Price: decimal.NewFromFloat(899.99), Stock: 50},
			{Name: "Wireless Headphones", Description: "Noise-cancelling headphones", Price: decimal.NewFromFloat(199.99), Stock: 100},
			{Name: "Monitor 4K", Description: "27-inch 4K monitor", Price: decimal.NewFromFloat(499.99), Stock: 30},
			{Name: "Keyboard Mechanical", Description: "RGB mechanical keyboard", Price: decimal.NewFromFloat(129.99), Stock: 75},
			{Name: "Mouse Gaming", Description: "Wireless gaming mouse", Price: decimal.NewFromFloat(79.99), Stock: 120},
		}
		for i := range products {
			if err := tx.Create(&products[i]).Error; err != nil {
				return err
			}
			fmt.Printf("  Created product: %s - $%s\n", products[i].Name, products[i].Price.StringFixed(2))
		}
		fmt.Printf("Created %d products\n", len(products))

		fmt.Println("Seeding orders...")
		orderSpecs := []struct {
			customer int
			products []int
			status   model.OrderStatus
		}{
			{customer: 0, products: []int{0, 1, 2}, status: model.OrderStatusCompleted},
			{customer: 1, products: []int{1, 3}, status: model.OrderStatusProcessing},
			{customer: 2, products: []int{4, 5}, status: model.OrderStatusPending},
			{customer: 3, products: []int{0, 3, 4}, status: model.OrderStatusCompleted},
			{customer: 4, products: []int{2, 5}, status: model.OrderStatusCompleted},
		}
		for _, s := range orderSpecs {
			order := model.Order{
				CustomerID: customers[s.customer].ID,
				OrderDate:  time.Now(),
				Status:     s.status,
			}
			names := make([]string, 0, len(s.products))
			for _, pi := range s.products {
				order.Products = append(order.Products, products[pi])
				names = append(names, products[pi].Name)
			}
			//商品マスタは触らず、中間テーブルの行だけ作る
			if err := tx.Omit("Products.*").Create(&order).Error; err != nil {
				return err
			}
			fmt.Printf("  Created order: %s - %s - Total: $%s\n",
				customers[s.customer].Name, strings.Join(names, ", "), order.TotalAmount().StringFixed(2))
		}
		fmt.Printf("Created %d orders\n", len(orderSpecs))

		fmt.Println()
		fmt.Println(banner)
		fmt.Println("Database Seeding Complete!")
		fmt.Println(banner)
		fmt.Printf("Total Customers: %d\n", len(customers))
		fmt.Printf("Total Products: %d\n", len(products))
		fmt.Printf("Total Orders: %d\n", len(orderSpecs))
		return nil
	})
}
