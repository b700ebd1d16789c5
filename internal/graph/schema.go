package graph

import (
	"errors"
	"strconv"
	"time"

	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/usecase"

	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"
)

// Resolverはクエリ/mutationをusecaseへつなぐ。
type Resolver struct {
	customers *usecase.CustomerUsecase
	products  *usecase.ProductUsecase
	orders    *usecase.OrderUsecase
}

// DI
func NewResolver(
	customers *usecase.CustomerUsecase,
	products *usecase.ProductUsecase,
	orders *usecase.OrderUsecase,
) *Resolver {
	return &Resolver{
		customers: customers,
		products:  products,
		orders:    orders,
	}
}

// bulkCreateCustomersの戻りはresult配下に入れ子で返す
type bulkCreateEnvelope struct {
	Result usecase.BulkCreateCustomersOutput `json:"result"`
}

// NewSchemaは実行可能なGraphQLスキーマを組み立てる。
func NewSchema(r *Resolver) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"hello": &graphql.Field{
				Type:        graphql.String,
				Description: "A simple greeting endpoint",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return "Hello, GraphQL!", nil
				},
			},

			"customers": &graphql.Field{
				Type: graphql.NewList(customerType),
				Args: graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: customerFilterInput},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					f := argMap(p, "filter")
					return r.customers.ListCustomers(p.Context, usecase.ListCustomersInput{
						Name:         strArg(f, "name"),
						Email:        strArg(f, "email"),
						CreatedAtGte: timeArg(f, "createdAtGte"),
						CreatedAtLte: timeArg(f, "createdAtLte"),
						PhonePattern: strArg(f, "phonePattern"),
					})
				},
			},
			"customer": &graphql.Field{
				Type: customerType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, ok := parseID(p.Args["id"])
					if !ok {
						return nil, nil
					}
					c, err := r.customers.GetCustomer(p.Context, id)
					if errors.Is(err, usecase.ErrNotFound) {
						return nil, nil
					}
					if err != nil {
						return nil, err
					}
					return c, nil
				},
			},

			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: productFilterInput},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					f := argMap(p, "filter")
					return r.products.ListProducts(p.Context, usecase.ListProductsInput{
						Name:     strArg(f, "name"),
						PriceGte: decimalArg(f, "priceGte"),
						PriceLte: decimalArg(f, "priceLte"),
						StockGte: int64Arg(f, "stockGte"),
						StockLte: int64Arg(f, "stockLte"),
						LowStock: boolArg(f, "lowStock"),
					})
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, ok := parseID(p.Args["id"])
					if !ok {
						return nil, nil
					}
					prod, err := r.products.GetProduct(p.Context, id)
					if errors.Is(err, usecase.ErrNotFound) {
						return nil, nil
					}
					if err != nil {
						return nil, err
					}
					return prod, nil
				},
			},

			"orders": &graphql.Field{
				Type: graphql.NewList(orderType),
				Args: graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: orderFilterInput},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					f := argMap(p, "filter")

					var productID *int64
					if id, ok := parseID(f["productId"]); ok {
						productID = &id
					}

					return r.orders.ListOrders(p.Context, usecase.ListOrdersInput{
						OrderDateGte: timeArg(f, "orderDateGte"),
						OrderDateLte: timeArg(f, "orderDateLte"),
						Status:       strArg(f, "status"),
						CustomerName: strArg(f, "customerName"),
						ProductName:  strArg(f, "productName"),
						ProductID:    productID,
					})
				},
			},
			"order": &graphql.Field{
				Type: orderType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, ok := parseID(p.Args["id"])
					if !ok {
						return nil, nil
					}
					o, err := r.orders.GetOrder(p.Context, id)
					if errors.Is(err, usecase.ErrNotFound) {
						return nil, nil
					}
					if err != nil {
						return nil, err
					}
					return o, nil
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createCustomer": &graphql.Field{
				Type: createCustomerPayload,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(customerInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in := argMap(p, "input")
					return r.customers.CreateCustomer(p.Context, usecase.CreateCustomerInput{
						Name:  strArg(in, "name"),
						Email: strArg(in, "email"),
						Phone: strArg(in, "phone"),
					}), nil
				},
			},

			"bulkCreateCustomers": &graphql.Field{
				Type: bulkCreateCustomersPayload,
				Args: graphql.FieldConfigArgument{
					"inputs": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(customerInputType))),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					raw, _ := p.Args["inputs"].([]interface{})
					inputs := make([]usecase.CreateCustomerInput, 0, len(raw))
					for _, item := range raw {
						m, ok := item.(map[string]interface{})
						if !ok {
							continue
						}
						inputs = append(inputs, usecase.CreateCustomerInput{
							Name:  strArg(m, "name"),
							Email: strArg(m, "email"),
							Phone: strArg(m, "phone"),
						})
					}
					out := r.customers.BulkCreateCustomers(p.Context, inputs)
					return bulkCreateEnvelope{Result: out}, nil
				},
			},

			"createProduct": &graphql.Field{
				Type: createProductPayload,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in := argMap(p, "input")

					var price decimal.Decimal
					if d, ok := in["price"].(decimal.Decimal); ok {
						price = d
					}

					return r.products.CreateProduct(p.Context, usecase.CreateProductInput{
						Name:        strArg(in, "name"),
						Description: strArg(in, "description"),
						Price:       price,
						Stock:       int64Arg(in, "stock"),
					}), nil
				},
			},

			"createOrder": &graphql.Field{
				Type: createOrderPayload,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(orderInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in := argMap(p, "input")

					rawIDs, _ := in["productIds"].([]interface{})
					productIDs := make([]string, 0, len(rawIDs))
					for _, v := range rawIDs {
						if s, ok := v.(string); ok {
							productIDs = append(productIDs, s)
						}
					}

					return r.orders.CreateOrder(p.Context, usecase.CreateOrderInput{
						CustomerID: strArg(in, "customerId"),
						ProductIDs: productIDs,
						OrderDate:  timeArg(in, "orderDate"),
					}), nil
				},
			},

			"updateLowStockProducts": &graphql.Field{
				Type: updateLowStockPayload,
				Args: graphql.FieldConfigArgument{
					"incrementBy": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 10},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					incrementBy := int64(10)
					if v, ok := p.Args["incrementBy"].(int); ok {
						incrementBy = int64(v)
					}
					return r.products.ReplenishLowStock(p.Context, usecase.ReplenishLowStockInput{
						IncrementBy: incrementBy,
					}), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

// 引数の取り出し

func argMap(p graphql.ResolveParams, key string) map[string]interface{} {
	if m, ok := p.Args[key].(map[string]interface{}); ok {
		return m
	}
	return nil
}

func parseID(v interface{}) (int64, bool) {
	s, ok := v.(string)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func strArg(m map[string]interface{}, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func timeArg(m map[string]interface{}, key string) *time.Time {
	if t, ok := m[key].(time.Time); ok {
		return &t
	}
	return nil
}

func decimalArg(m map[string]interface{}, key string) *decimal.Decimal {
	if d, ok := m[key].(decimal.Decimal); ok {
		return &d
	}
	return nil
}

func int64Arg(m map[string]interface{}, key string) *int64 {
	if v, ok := m[key].(int); ok {
		n := int64(v)
		return &n
	}
	return nil
}

func boolArg(m map[string]interface{}, key string) *bool {
	if b, ok := m[key].(bool); ok {
		return &b
	}
	return nil
}
