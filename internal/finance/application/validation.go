package application

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	appErrors "github.com/sebuszqo/FinanceTracker/internal/errors"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

const (
	maxDescriptionLength  = 255
	maxCategoryNameLength = 50
	maxCategoryIconLength = 100
)

// NUMERIC(12,2) holds at most ten integer digits.
var maxAmount = decimal.New(1, 10)

// TransactionRequest is the JSON body of a transaction write. Numeric fields
// accept either JSON numbers or numeric strings.
type TransactionRequest struct {
	Amount          json.RawMessage `json:"amount"`
	TypeID          json.RawMessage `json:"typeId"`
	Type            string          `json:"type"`
	CategoryID      json.RawMessage `json:"categoryId"`
	Category        json.RawMessage `json:"category"`
	Description     *string         `json:"description"`
	TransactionDate string          `json:"transactionDate"`
}

// TransactionCommand is a validated transaction write. Exactly one of TypeID
// and TypeName is set.
type TransactionCommand struct {
	Amount          decimal.Decimal
	TypeID          int
	TypeName        string
	CategoryID      int64
	Description     *string
	TransactionDate domain.Date
}

type CategoryRequest struct {
	Name string  `json:"name"`
	Type string  `json:"type"`
	Icon *string `json:"icon"`
}

// rawValue returns the text of a JSON scalar without quotes, or "" for
// absent, null and empty values.
func rawValue(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return string(raw)
}

// ValidateTransaction checks a transaction write. Missing required fields are
// reported together first; format problems are collected after that.
func ValidateTransaction(req TransactionRequest) (TransactionCommand, error) {
	amountText := rawValue(req.Amount)
	typeIDText := rawValue(req.TypeID)
	typeName := strings.TrimSpace(req.Type)
	categoryText := rawValue(req.CategoryID)
	if categoryText == "" {
		categoryText = rawValue(req.Category)
	}
	dateText := strings.TrimSpace(req.TransactionDate)

	var missing []string
	amount, amountErr := decimal.NewFromString(amountText)
	// Anything that rounds to zero cents counts as no amount.
	if amountText == "" || (amountErr == nil && amount.Round(2).IsZero()) {
		missing = append(missing, "amount")
	}
	if typeIDText == "" && typeName == "" {
		missing = append(missing, "typeId")
	}
	if categoryText == "" {
		missing = append(missing, "categoryId")
	}
	if dateText == "" {
		missing = append(missing, "transactionDate")
	}
	if len(missing) > 0 {
		return TransactionCommand{}, appErrors.NewValidationError(
			fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")))
	}

	var cmd TransactionCommand
	var errs appErrors.ValidationErrors

	switch {
	case amountErr != nil:
		errs.Add(appErrors.NewValidationError("Amount must be a valid number"))
	case amount.IsNegative():
		errs.Add(appErrors.NewValidationError("Amount must not be negative"))
	default:
		cmd.Amount = amount.Round(2)
		if cmd.Amount.GreaterThanOrEqual(maxAmount) {
			errs.Add(appErrors.NewValidationError("Amount is out of range"))
		}
	}

	if typeIDText != "" {
		typeID, err := strconv.Atoi(typeIDText)
		if err != nil || typeID <= 0 {
			errs.Add(appErrors.NewValidationError("typeId must be a positive integer"))
		}
		cmd.TypeID = typeID
	} else if !domain.IsValidType(typeName) {
		errs.Add(appErrors.NewValidationError("Type must be 'income' or 'expense'"))
	} else {
		cmd.TypeName = typeName
	}

	categoryID, err := strconv.ParseInt(categoryText, 10, 64)
	if err != nil || categoryID <= 0 {
		errs.Add(appErrors.NewValidationError("categoryId must be a positive integer"))
	}
	cmd.CategoryID = categoryID

	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if utf8.RuneCountInString(description) > maxDescriptionLength {
			errs.Add(appErrors.NewValidationError(
				fmt.Sprintf("Description must be at most %d characters", maxDescriptionLength)))
		}
		if description != "" {
			cmd.Description = &description
		}
	}

	date, err := domain.ParseDate(dateText)
	if err != nil {
		errs.Add(appErrors.NewValidationError("transactionDate must be in YYYY-MM-DD format"))
	}
	cmd.TransactionDate = date

	if err := errs.ErrOrNil(); err != nil {
		return TransactionCommand{}, err
	}
	return cmd, nil
}

func ValidateCategory(req CategoryRequest) (domain.CategoryInput, error) {
	name := strings.TrimSpace(req.Name)
	categoryType := strings.TrimSpace(req.Type)

	if name == "" || categoryType == "" {
		return domain.CategoryInput{}, appErrors.NewValidationError("Name and type are required")
	}

	var errs appErrors.ValidationErrors
	if utf8.RuneCountInString(name) > maxCategoryNameLength {
		errs.Add(appErrors.NewValidationError(
			fmt.Sprintf("Name must be at most %d characters", maxCategoryNameLength)))
	}
	if !domain.IsValidType(categoryType) {
		errs.Add(appErrors.NewValidationError("Type must be 'income' or 'expense'"))
	}

	var icon *string
	if req.Icon != nil {
		trimmed := strings.TrimSpace(*req.Icon)
		if utf8.RuneCountInString(trimmed) > maxCategoryIconLength {
			errs.Add(appErrors.NewValidationError(
				fmt.Sprintf("Icon must be at most %d characters", maxCategoryIconLength)))
		}
		if trimmed != "" {
			icon = &trimmed
		}
	}

	if err := errs.ErrOrNil(); err != nil {
		return domain.CategoryInput{}, err
	}
	return domain.CategoryInput{Name: name, Type: categoryType, Icon: icon}, nil
}

// ParseListQuery reads filters and pagination from a query string. Malformed
// pagination and id filters fall back to defaults; malformed dates are
// rejected.
func ParseListQuery(query url.Values) (domain.TransactionFilters, domain.Pagination, error) {
	page := domain.DefaultPagination()
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit > 0 {
		page.Limit = limit
	}
	if offset, err := strconv.Atoi(query.Get("offset")); err == nil && offset >= 0 {
		page.Offset = offset
	}

	var filters domain.TransactionFilters
	filters.Description = strings.TrimSpace(query.Get("description"))

	var errs appErrors.ValidationErrors
	if !utf8.ValidString(filters.Description) {
		errs.Add(appErrors.NewValidationError("description must be valid UTF-8"))
		filters.Description = ""
	}

	if typeID, err := strconv.Atoi(query.Get("typeId")); err == nil && typeID > 0 {
		filters.TypeID = &typeID
	}
	categoryText := query.Get("categoryId")
	if categoryText == "" {
		categoryText = query.Get("category")
	}
	if categoryID, err := strconv.ParseInt(categoryText, 10, 64); err == nil && categoryID > 0 {
		filters.CategoryID = &categoryID
	}

	if s := strings.TrimSpace(query.Get("startDate")); s != "" {
		start, err := domain.ParseDate(s)
		if err != nil {
			errs.Add(appErrors.NewValidationError("startDate must be in YYYY-MM-DD format"))
		} else {
			filters.StartDate = &start
		}
	}
	if s := strings.TrimSpace(query.Get("endDate")); s != "" {
		end, err := domain.ParseDate(s)
		if err != nil {
			errs.Add(appErrors.NewValidationError("endDate must be in YYYY-MM-DD format"))
		} else {
			filters.EndDate = &end
		}
	}

	if err := errs.ErrOrNil(); err != nil {
		return domain.TransactionFilters{}, domain.Pagination{}, err
	}
	return filters, page, nil
}

// ParseID reads a positive integer path identifier.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.NewValidationError("Invalid id")
	}
	return id, nil
}
