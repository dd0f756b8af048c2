//go:generate mockgen -source=../book_gateway.go -destination=./mock_book_gateway.go -package=mocks
//go:generate mockgen -source=../cart_store.go   -destination=./mock_cart_store.go   -package=mocks
//go:generate mockgen -source=../validator.go    -destination=./mock_validator.go    -package=mocks
//go:generate mockgen -source=../logger.go       -destination=./mock_logger.go       -package=mocks

package mocks
