package dto

// CreateBankRequest registers a bank/provider.
type CreateBankRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

// CreateAccountTypeRequest registers an account type.
type CreateAccountTypeRequest struct {
	Name string `json:"name" validate:"required,max=80"`
}

// CreateCountryRequest registers a country with its currency.
type CreateCountryRequest struct {
	Code         string `json:"code" validate:"required,len=2,alpha"`
	CurrencyCode string `json:"currencyCode" validate:"required,len=3,alpha"`
	CurrencyName string `json:"currencyName" validate:"omitempty,max=60"`
}
