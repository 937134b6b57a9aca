package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/suite-pro/internal/domain/entity"
)

// Product es un producto del terminal POS (datos demo).
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Stock    int             `json:"stock"`
}

// Platform es una plataforma del directorio e-commerce.
type Platform struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Route       string `json:"route"`
}

// defaultModules: catálogo de módulos del demo con su control de visibilidad
// por rol. "ecommerce" y "pos" tienen vistas dedicadas (entity.ModuleEcommerce,
// entity.ModulePOS); el resto usa la vista genérica con pestañas.
func defaultModules() []entity.Module {
	return []entity.Module{
		{
			ID: "sales", Name: "Sales", Icon: "shopping-cart", Color: "blue",
			Description:  "Órdenes de venta, clientes y socios de negocio",
			Path:         "/modules/sales",
			AllowedRoles: []string{entity.RoleAdmin, entity.RoleManager, entity.RoleUser},
		},
		{
			ID: "inventory", Name: "Inventory", Icon: "package", Color: "green",
			Description:  "Productos, categorías, marcas y bodegas",
			Path:         "/modules/inventory",
			AllowedRoles: []string{entity.RoleAdmin, entity.RoleManager},
		},
		{
			ID: "hr", Name: "Human Resources", Icon: "users", Color: "purple",
			Description:  "Empleados y gestión de personal",
			Path:         "/modules/hr",
			AllowedRoles: []string{entity.RoleAdmin},
		},
		{
			ID: entity.ModulePOS, Name: "Point of Sale", Icon: "credit-card", Color: "orange",
			Description:  "Terminal de venta con carrito y cobro",
			Path:         "/pos",
			AllowedRoles: []string{entity.RoleAdmin, entity.RoleManager, entity.RoleUser},
		},
		{
			ID: entity.ModuleEcommerce, Name: "E-commerce", Icon: "globe", Color: "pink",
			Description:  "Integraciones con plataformas de venta online",
			Path:         "/ecommerce",
			AllowedRoles: []string{entity.RoleAdmin, entity.RoleManager},
		},
	}
}

// defaultForms: una configuración declarativa por tipo de entidad.
func defaultForms() map[string]entity.FormConfig {
	return map[string]entity.FormConfig{
		"employee": {
			Title:            "Add New Employee",
			Description:      "Registrar un empleado en el sistema",
			SubmitButtonText: "Create Employee",
			Fields: []entity.FormField{
				{Name: "fullName", Type: entity.FieldText, Label: "Full Name", Required: true, Placeholder: "Jane Doe"},
				{Name: "email", Type: entity.FieldEmail, Label: "Email", Required: true, Placeholder: "jane@company.com"},
				{Name: "department", Type: entity.FieldSelect, Label: "Department", Required: true, Options: []entity.Option{
					{Value: "engineering", Label: "Engineering"},
					{Value: "sales", Label: "Sales"},
					{Value: "hr", Label: "Human Resources"},
					{Value: "finance", Label: "Finance"},
				}},
				{Name: "startDate", Type: entity.FieldDate, Label: "Start Date", Required: true},
				{Name: "salary", Type: entity.FieldNumber, Label: "Salary", Validation: &entity.ValidationRule{Min: f(0)}},
				{Name: "remote", Type: entity.FieldCheckbox, Label: "Remote worker"},
				{Name: "notes", Type: entity.FieldTextarea, Label: "Notes", Placeholder: "Observaciones"},
			},
		},
		"product": {
			Title:            "Add New Product",
			Description:      "Registrar un producto del inventario",
			SubmitButtonText: "Create Product",
			Fields: []entity.FormField{
				{Name: "name", Type: entity.FieldText, Label: "Product Name", Required: true},
				{Name: "sku", Type: entity.FieldText, Label: "SKU", Required: true, Validation: &entity.ValidationRule{Pattern: `[A-Z0-9-]+`}},
				{Name: "category", Type: entity.FieldSelect, Label: "Category", Required: true, Options: []entity.Option{
					{Value: "electronics", Label: "Electronics"},
					{Value: "office", Label: "Office"},
					{Value: "kitchen", Label: "Kitchen"},
					{Value: "sports", Label: "Sports"},
				}},
				{Name: "price", Type: entity.FieldNumber, Label: "Price", Required: true, Validation: &entity.ValidationRule{Min: f(0)}},
				{Name: "stock", Type: entity.FieldNumber, Label: "Initial Stock"},
				{Name: "active", Type: entity.FieldCheckbox, Label: "Active"},
			},
		},
		"customer": {
			Title:            "Add New Customer",
			Description:      "Registrar un cliente",
			SubmitButtonText: "Create Customer",
			Fields: []entity.FormField{
				{Name: "name", Type: entity.FieldText, Label: "Customer Name", Required: true},
				{Name: "email", Type: entity.FieldEmail, Label: "Email", Required: true},
				{Name: "phone", Type: entity.FieldText, Label: "Phone", Validation: &entity.ValidationRule{Pattern: `[0-9+\-() ]{7,20}`}},
				{Name: "address", Type: entity.FieldTextarea, Label: "Address"},
				{Name: "vip", Type: entity.FieldCheckbox, Label: "VIP customer"},
			},
		},
		"business-partner": {
			Title:            "Add Business Partner",
			Description:      "Registrar un socio de negocio",
			SubmitButtonText: "Create Partner",
			Fields: []entity.FormField{
				{Name: "companyName", Type: entity.FieldText, Label: "Company Name", Required: true},
				{Name: "taxId", Type: entity.FieldText, Label: "Tax ID", Required: true},
				{Name: "partnerType", Type: entity.FieldSelect, Label: "Partner Type", Required: true, Options: []entity.Option{
					{Value: "supplier", Label: "Supplier"},
					{Value: "distributor", Label: "Distributor"},
					{Value: "reseller", Label: "Reseller"},
				}},
				{Name: "contactEmail", Type: entity.FieldEmail, Label: "Contact Email"},
				{Name: "since", Type: entity.FieldDate, Label: "Partner Since"},
			},
		},
		"sales-order": {
			Title:            "Create Sales Order",
			Description:      "Cabecera de la orden más líneas de detalle",
			SubmitButtonText: "Create Order",
			HasItemDetails:   true,
			Fields: []entity.FormField{
				{Name: "customerName", Type: entity.FieldText, Label: "Customer Name", Required: true},
				{Name: "orderDate", Type: entity.FieldDate, Label: "Order Date", Required: true},
				{Name: "status", Type: entity.FieldSelect, Label: "Status", Options: []entity.Option{
					{Value: "draft", Label: "Draft"},
					{Value: "confirmed", Label: "Confirmed"},
					{Value: "shipped", Label: "Shipped"},
					{Value: "delivered", Label: "Delivered"},
					{Value: "cancelled", Label: "Cancelled"},
				}},
				{Name: "notes", Type: entity.FieldTextarea, Label: "Notes"},
			},
			ItemFields: []entity.FormField{
				{Name: "productName", Type: entity.FieldText, Label: "Product", Required: true},
				{Name: "quantity", Type: entity.FieldNumber, Label: "Quantity", Required: true, Validation: &entity.ValidationRule{Min: f(0)}},
				{Name: "unitPrice", Type: entity.FieldNumber, Label: "Unit Price", Required: true, Validation: &entity.ValidationRule{Min: f(0)}},
				{Name: "discount", Type: entity.FieldNumber, Label: "Discount %", Validation: &entity.ValidationRule{Min: f(0), Max: f(100)}},
			},
		},
	}
}

// defaultProducts: productos demo del terminal POS.
func defaultProducts() []Product {
	return []Product{
		{ID: "1", Name: "Laptop", Price: decimal.NewFromFloat(999.99), Category: "Electronics", Stock: 10},
		{ID: "2", Name: "Coffee Mug", Price: decimal.NewFromFloat(12.99), Category: "Kitchen", Stock: 25},
		{ID: "3", Name: "Wireless Mouse", Price: decimal.NewFromFloat(29.99), Category: "Electronics", Stock: 15},
		{ID: "4", Name: "Notebook", Price: decimal.NewFromFloat(8.99), Category: "Office", Stock: 30},
		{ID: "5", Name: "Headphones", Price: decimal.NewFromFloat(79.99), Category: "Electronics", Stock: 8},
		{ID: "6", Name: "Water Bottle", Price: decimal.NewFromFloat(15.99), Category: "Sports", Stock: 20},
		{ID: "7", Name: "Desk Lamp", Price: decimal.NewFromFloat(45.99), Category: "Home", Stock: 12},
		{ID: "8", Name: "Phone Case", Price: decimal.NewFromFloat(19.99), Category: "Electronics", Stock: 18},
	}
}

// defaultPlatforms: directorio de plataformas de la vista e-commerce.
func defaultPlatforms() []Platform {
	return []Platform{
		{ID: "shopify", Name: "Shopify", Description: "Build and customize your online store", Logo: "🛍️", Route: "/ecommerce/shopify"},
		{ID: "amazon", Name: "Amazon", Description: "Sell on the world's largest marketplace", Logo: "📦", Route: "/ecommerce/amazon"},
		{ID: "walmart", Name: "Walmart", Description: "Reach millions of Walmart customers", Logo: "🏪", Route: "/ecommerce/walmart"},
		{ID: "ebay", Name: "eBay", Description: "Auction and fixed-price selling", Logo: "🎯", Route: "/ecommerce/ebay"},
		{ID: "etsy", Name: "Etsy", Description: "Marketplace for creative goods", Logo: "🎨", Route: "/ecommerce/etsy"},
		{ID: "facebook", Name: "Facebook Shop", Description: "Social commerce platform", Logo: "📱", Route: "/ecommerce/facebook"},
		{ID: "instagram", Name: "Instagram Shop", Description: "Visual shopping experience", Logo: "📸", Route: "/ecommerce/instagram"},
		{ID: "google", Name: "Google Shopping", Description: "Reach customers via Google", Logo: "🔍", Route: "/ecommerce/google"},
	}
}

func f(v float64) *float64 { return &v }
