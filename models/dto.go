package models

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	FullName string `json:"full_name" form:"full_name" binding:"required,min=3"`
	Role     string `json:"role" form:"role" binding:"omitempty,oneof=staff admin"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type CheckoutRequest struct {
	CustomerName  string `json:"customer_name" form:"customer_name"`
	TableNumber   string `json:"table_number" form:"table_number"`
	PaymentMethod string `json:"payment_method" form:"payment_method"`
	Email         string `json:"email" form:"email" binding:"omitempty,email"`
}

type CheckoutResponse struct {
	Order        Order  `json:"order"`
	InvoiceURL   string `json:"invoice_url"`
	WhatsAppLink string `json:"whatsapp_link,omitempty"`
}

type UpdateSessionRequest struct {
	CustomerName *string `json:"customer_name"`
	TableNumber  *string `json:"table_number"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

type CreateCategoryRequest struct {
	Name         string `json:"name" form:"name" binding:"required"`
	Slug         string `json:"slug" form:"slug" binding:"required"`
	Icon         string `json:"icon" form:"icon"`
	Description  string `json:"description" form:"description"`
	DisplayOrder int    `json:"display_order" form:"display_order"`
}

type UpdateCategoryRequest struct {
	Name         string `json:"name" form:"name"`
	Slug         string `json:"slug" form:"slug"`
	Icon         string `json:"icon" form:"icon"`
	Description  string `json:"description" form:"description"`
	DisplayOrder *int   `json:"display_order" form:"display_order"`
}

type CreateProductRequest struct {
	Name        string   `json:"name" form:"name" binding:"required"`
	Description string   `json:"description" form:"description" binding:"required"`
	CategoryID  string   `json:"category_id" form:"category_id" binding:"required"`
	Price       int      `json:"price" form:"price" binding:"required,min=0"`
	Badge       string   `json:"badge" form:"badge"`
	Rating      *float64 `json:"rating" form:"rating"`
	Calories    *int     `json:"calories" form:"calories"`
	Tags        []string `json:"tags" form:"tags"`
	IsAvailable bool     `json:"is_available" form:"is_available"`
}

type UpdateProductRequest struct {
	Name        string   `json:"name" form:"name"`
	Description string   `json:"description" form:"description"`
	CategoryID  string   `json:"category_id" form:"category_id"`
	Price       *int     `json:"price" form:"price"`
	Badge       *string  `json:"badge" form:"badge"`
	Rating      *float64 `json:"rating" form:"rating"`
	Calories    *int     `json:"calories" form:"calories"`
	Tags        []string `json:"tags" form:"tags"`
	IsAvailable *bool    `json:"is_available" form:"is_available"`
}

type ProductFilter struct {
	CategoryID  string
	Search      string
	IsAvailable *bool
	Page        int
	Limit       int
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type MetaData struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type PaginationResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    MetaData    `json:"meta"`
}

type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type PaginationLinks struct {
	Self string `json:"self"`
	Next string `json:"next,omitempty"`
	Prev string `json:"prev,omitempty"`
}

type HATEOASResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    interface{}     `json:"data"`
	Meta    PaginationMeta  `json:"meta"`
	Links   PaginationLinks `json:"links"`
}
