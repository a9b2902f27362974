package http_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type listOrdersBody struct {
	Data []struct {
		ID    string `json:"id"`
		Items []struct {
			Product struct {
				Name string `json:"name"`
				ID   string `json:"id"`
			} `json:"product"`
			Qty int `json:"qty"`
		} `json:"items"`
		Total float64 `json:"total"`
	} `json:"data"`
	Page struct {
		Next     *int64 `json:"next"`
		Limit    int64  `json:"limit"`
		Previous *int64 `json:"previous"`
	} `json:"page"`
}

func TestCreateOrder_ReturnsAssignedID(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/orders", map[string]interface{}{
		"userId": "user-1",
		"items":  []map[string]interface{}{{"productId": "12345", "qty": 2}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &created)
	require.NotEmpty(t, created.ID)
}

func TestCreateOrder_DanglingReferenceAccepted(t *testing.T) {
	server := newTestServer(t)

	// Ссылки не проверяются при создании.
	resp := postJSON(t, server.URL+"/orders", map[string]interface{}{
		"userId": "user-1",
		"items":  []map[string]interface{}{{"productId": "999999", "qty": 1}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func TestCreateOrder_Validation(t *testing.T) {
	server := newTestServer(t)

	cases := []struct {
		name  string
		body  map[string]interface{}
		field string
	}{
		{
			name:  "missing userId",
			body:  map[string]interface{}{"items": []map[string]interface{}{{"productId": "1", "qty": 1}}},
			field: "userId",
		},
		{
			name:  "empty productId",
			body:  map[string]interface{}{"userId": "u", "items": []map[string]interface{}{{"productId": "", "qty": 1}}},
			field: "items.productId",
		},
		{
			name:  "zero qty",
			body:  map[string]interface{}{"userId": "u", "items": []map[string]interface{}{{"productId": "1", "qty": 0}}},
			field: "items.qty",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, server.URL+"/orders", tc.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body struct {
				Field string `json:"field"`
			}
			decodeBody(t, resp, &body)
			require.Equal(t, tc.field, body.Field)
		})
	}
}

func TestListOrders_Enrichment(t *testing.T) {
	server := newTestServer(t)

	redID := createProduct(t, server, "Shirt-Red", "M", 10)
	blueID := createProduct(t, server, "Shirt-Blue", "L", 4)

	resp := postJSON(t, server.URL+"/orders", map[string]interface{}{
		"userId": "user-1",
		"items": []map[string]interface{}{
			{"productId": fmt.Sprint(redID), "qty": 3},
			{"productId": fmt.Sprint(blueID), "qty": 2},
			{"productId": "999", "qty": 5},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	listResp, err := http.Get(server.URL + "/orders/user-1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var body listOrdersBody
	decodeBody(t, listResp, &body)
	require.Len(t, body.Data, 1)

	order := body.Data[0]
	require.NotEmpty(t, order.ID)
	// Висячая ссылка отброшена, порядок сохранён.
	require.Len(t, order.Items, 2)
	require.Equal(t, "Shirt-Red", order.Items[0].Product.Name)
	require.Equal(t, fmt.Sprint(redID), order.Items[0].Product.ID)
	require.Equal(t, 3, order.Items[0].Qty)
	require.Equal(t, "Shirt-Blue", order.Items[1].Product.Name)
	require.Equal(t, float64(10*3+4*2), order.Total)
}

func TestListOrders_OnlyDanglingReferences(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/orders", map[string]interface{}{
		"userId": "user-1",
		"items":  []map[string]interface{}{{"productId": "999", "qty": 2}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	listResp, err := http.Get(server.URL + "/orders/user-1")
	require.NoError(t, err)

	var body listOrdersBody
	decodeBody(t, listResp, &body)
	require.Len(t, body.Data, 1)
	require.Empty(t, body.Data[0].Items)
	require.Zero(t, body.Data[0].Total)
}

func TestListOrders_Pagination(t *testing.T) {
	server := newTestServer(t)

	for i := 0; i < 15; i++ {
		resp := postJSON(t, server.URL+"/orders", map[string]interface{}{
			"userId": "user-1",
			"items":  []map[string]interface{}{{"productId": "1", "qty": 1}},
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	listResp, err := http.Get(server.URL + "/orders/user-1?limit=10&offset=10")
	require.NoError(t, err)

	var body listOrdersBody
	decodeBody(t, listResp, &body)
	require.Len(t, body.Data, 5)
	require.Nil(t, body.Page.Next)
	require.NotNil(t, body.Page.Previous)
	require.EqualValues(t, 0, *body.Page.Previous)
}

func TestListOrders_UnknownUser(t *testing.T) {
	server := newTestServer(t)

	listResp, err := http.Get(server.URL + "/orders/nobody")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var body listOrdersBody
	decodeBody(t, listResp, &body)
	require.Empty(t, body.Data)
	require.Nil(t, body.Page.Next)
	require.Nil(t, body.Page.Previous)
}
