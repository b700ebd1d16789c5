package graph

import (
	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/domain/model"

	"github.com/graphql-go/graphql"
)

// オブジェクト型。
// 明示的なResolveを書いていないフィールドは、モデルのフィールド名から自動解決される。

var errorType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ErrorType",
	Fields: graphql.Fields{
		"field":   &graphql.Field{Type: graphql.String},
		"message": &graphql.Field{Type: graphql.String},
	},
})

var customerType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Customer",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":      &graphql.Field{Type: graphql.String},
		"email":     &graphql.Field{Type: graphql.String},
		"phone":     &graphql.Field{Type: graphql.String},
		"createdAt": &graphql.Field{Type: graphql.DateTime},
		"updatedAt": &graphql.Field{Type: graphql.DateTime},
	},
})

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":        &graphql.Field{Type: graphql.String},
		"description": &graphql.Field{Type: graphql.String},
		"price":       &graphql.Field{Type: decimalScalar},
		"stock":       &graphql.Field{Type: graphql.Int},
		"createdAt":   &graphql.Field{Type: graphql.DateTime},
		"updatedAt":   &graphql.Field{Type: graphql.DateTime},
	},
})

var orderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Order",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"customer":  &graphql.Field{Type: customerType},
		"products":  &graphql.Field{Type: graphql.NewList(productType)},
		"orderDate": &graphql.Field{Type: graphql.DateTime},
		"status":    &graphql.Field{Type: graphql.String},

		// 保存していない派生値。読むたびに商品単価から計算する。
		"totalAmount": &graphql.Field{
			Type: decimalScalar,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				switch o := p.Source.(type) {
				case model.Order:
					return o.TotalAmount(), nil
				case *model.Order:
					return o.TotalAmount(), nil
				}
				return nil, nil
			},
		},

		"createdAt": &graphql.Field{Type: graphql.DateTime},
		"updatedAt": &graphql.Field{Type: graphql.DateTime},
	},
})

// 入力型

var customerInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CustomerInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"phone": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var productInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"price":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(decimalScalar)},
		"stock":       &graphql.InputObjectFieldConfig{Type: graphql.Int},
	},
})

var orderInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"customerId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"productIds": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID)))},
		"orderDate":  &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
	},
})

// 一覧の絞り込み条件

var customerFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CustomerFilterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":         &graphql.InputObjectFieldConfig{Type: graphql.String},
		"email":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"createdAtGte": &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"createdAtLte": &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"phonePattern": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var productFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductFilterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"priceGte": &graphql.InputObjectFieldConfig{Type: decimalScalar},
		"priceLte": &graphql.InputObjectFieldConfig{Type: decimalScalar},
		"stockGte": &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"stockLte": &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"lowStock": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
	},
})

var orderFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderFilterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"orderDateGte": &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"orderDateLte": &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		"status":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"customerName": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"productName":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"productId":    &graphql.InputObjectFieldConfig{Type: graphql.ID},
	},
})

// mutationのペイロード型

var createCustomerPayload = graphql.NewObject(graphql.ObjectConfig{
	Name: "CreateCustomerPayload",
	Fields: graphql.Fields{
		"customer": &graphql.Field{Type: customerType},
		"message":  &graphql.Field{Type: graphql.String},
		"errors":   &graphql.Field{Type: graphql.NewList(errorType)},
	},
})

var bulkCreateResultType = graphql.NewObject(graphql.ObjectConfig{
	Name: "BulkCreateResult",
	Fields: graphql.Fields{
		"customers": &graphql.Field{Type: graphql.NewList(customerType)},
		"errors":    &graphql.Field{Type: graphql.NewList(errorType)},
	},
})

var bulkCreateCustomersPayload = graphql.NewObject(graphql.ObjectConfig{
	Name: "BulkCreateCustomersPayload",
	Fields: graphql.Fields{
		"result": &graphql.Field{Type: bulkCreateResultType},
	},
})

var createProductPayload = graphql.NewObject(graphql.ObjectConfig{
	Name: "CreateProductPayload",
	Fields: graphql.Fields{
		"product": &graphql.Field{Type: productType},
		"errors":  &graphql.Field{Type: graphql.NewList(errorType)},
	},
})

var createOrderPayload = graphql.NewObject(graphql.ObjectConfig{
	Name: "CreateOrderPayload",
	Fields: graphql.Fields{
		"order":  &graphql.Field{Type: orderType},
		"errors": &graphql.Field{Type: graphql.NewList(errorType)},
	},
})

var updateLowStockPayload = graphql.NewObject(graphql.ObjectConfig{
	Name: "UpdateLowStockProductsPayload",
	Fields: graphql.Fields{
		"success":         &graphql.Field{Type: graphql.Boolean},
		"message":         &graphql.Field{Type: graphql.String},
		"updatedCount":    &graphql.Field{Type: graphql.Int},
		"updatedProducts": &graphql.Field{Type: graphql.NewList(productType)},
	},
})
