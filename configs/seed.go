package configs

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/NemesisID/PreviewOnly-Dash/entity"
	"github.com/NemesisID/PreviewOnly-Dash/repository"
	"github.com/NemesisID/PreviewOnly-Dash/services"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the first admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin(ctx context.Context, db *gorm.DB, cfg *Config) error {
	return seedUser(ctx, db, cfg.AdminEmail, cfg.AdminPassword, "Admin", entity.RoleAdmin)
}

// SeedStaff creates an operator account from STAFF_EMAIL/STAFF_PASSWORD; other staff are added by an admin in the database.
func SeedStaff(ctx context.Context, db *gorm.DB, cfg *Config) error {
	return seedUser(ctx, db, cfg.StaffEmail, cfg.StaffPassword, "Staff", entity.RoleStaff)
}

func seedUser(ctx context.Context, db *gorm.DB, email, password, name, role string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		log.Printf("⚠️ skip seeding %s: missing email/password", role)
		return nil
	}

	users := repository.NewUserRepository(db)
	count, err := users.CountByEmail(ctx, email)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("ℹ️ %s already exists: %s", role, email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash %s password: %w", role, err)
	}
	return users.Create(ctx, &entity.User{
		Email:    email,
		Password: string(hash),
		Name:     name,
		Role:     role,
	})
}

// SeedDemo fills an empty database with sample products, outlets and orders.
// Orders go through the import path so item snapshots and totals are computed the normal way.
func SeedDemo(ctx context.Context, db *gorm.DB) error {
	var n int64
	if err := db.WithContext(ctx).Model(&entity.Order{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		log.Println("ℹ️ skip demo seed: orders already present")
		return nil
	}

	products := make([]entity.Product, 0, 10)
	for i := 0; i < 10; i++ {
		category := "Drink"
		if i%2 == 0 {
			category = "Food"
		}
		products = append(products, entity.Product{
			Name:        fmt.Sprintf("Product %d", i+1),
			Description: fmt.Sprintf("Tasty item number %d", i+1),
			Price:       int64(10000 + i*1500),
			ImagePath:   fmt.Sprintf("https://placehold.co/600x400?text=Product+%d", i+1),
			Category:    category,
			IsActive:    true,
		})
	}
	if err := db.WithContext(ctx).Create(&products).Error; err != nil {
		return fmt.Errorf("seed products: %w", err)
	}

	outlets := make([]entity.Outlet, 0, 5)
	for i := 0; i < 5; i++ {
		typ := "Kiosk"
		if i%2 == 0 {
			typ = "Cafe"
		}
		outlets = append(outlets, entity.Outlet{
			Name:           fmt.Sprintf("Outlet %d", i+1),
			Type:           typ,
			Address:        fmt.Sprintf("Street %d, Jakarta", i+1),
			GoogleMapsLink: "https://maps.google.com/?q=-6.200000,106.816666",
			Latitude:       -6.2 + float64(i)*0.01,
			Longitude:      106.816666 + float64(i)*0.01,
			ImagePath:      fmt.Sprintf("https://placehold.co/600x400?text=Outlet+%d", i+1),
		})
	}
	if err := db.WithContext(ctx).Create(&outlets).Error; err != nil {
		return fmt.Errorf("seed outlets: %w", err)
	}

	orderSvc := services.NewOrderService(db, repository.NewOrderRepository(db), repository.NewProductRepository(db))
	for i := 0; i < 20; i++ {
		items := make([]services.ImportItemIn, 0, 3)
		for idx := 0; idx < 1+i%3; idx++ {
			items = append(items, services.ImportItemIn{
				ProductID: products[(i+idx)%len(products)].ID,
				Quantity:  1 + (i+idx)%2,
			})
		}
		courier := "J&T"
		if i%2 == 0 {
			courier = "JNE"
		}

		_, err := orderSvc.Import(ctx, services.ImportOrderInput{
			OrderInput: services.OrderInput{
				Code:               fmt.Sprintf("ORD-%d", 1000+i),
				TrackingCode:       fmt.Sprintf("TRK-%d-%s", i, strings.ToUpper(uuid.NewString()[:6])),
				ReceiptNumber:      fmt.Sprintf("RCPT-%d", 2000+i),
				CustomerName:       fmt.Sprintf("Customer %d", i+1),
				CustomerPhone:      fmt.Sprintf("0812-0000-%04d", i),
				CustomerEmail:      fmt.Sprintf("customer%d@example.com", i+1),
				CustomerAddress:    fmt.Sprintf("Jl. Melati No. %d, Jakarta", i+10),
				CustomerCity:       "Jakarta",
				CustomerProvince:   "DKI Jakarta",
				CustomerPostalCode: fmt.Sprintf("10%03d", i),
				ShippingCourier:    courier,
				Source:             string(entity.OrderSources[i%len(entity.OrderSources)]),
			},
			Status: string(entity.OrderStatuses[i%len(entity.OrderStatuses)]),
			Items:  items,
		})
		if err != nil {
			return fmt.Errorf("seed order %d: %w", i, err)
		}
	}

	log.Println("🌱 demo data seeded: 10 products, 5 outlets, 20 orders")
	return nil
}
