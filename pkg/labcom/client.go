// Package labcom is a thin client for the Labcom cloud GraphQL API, the
// upstream that holds the chemical test results recorded on board.
package labcom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	cloudAccountQuery = `query {
  CloudAccount {
    id
    email
    name
  }
}`

	accountsQuery = `query {
  Accounts {
    id
    forename
    surname
    email
    address
    gps
    volume
    volume_unit
    pooltext
  }
}`

	parametersQuery = `query GetParameters($languageId: Int) {
  Parameters(languageId: $languageId) {
    parameter_id
    name_short_i18n
    name_long_i18n
    language_id
    Parameter {
      id
      name_short
      name_long
      unit
      limit_min
      limit_max
    }
  }
}`

	measurementsQuery = `query GetMeasurements($accountId: [Int], $from: Int, $to: Int, $parameterName: String) {
  Measurements(accountId: $accountId, from: $from, to: $to, parameterName: $parameterName) {
    id
    account_id
    account
    parameter_id
    parameter
    value
    timestamp
    unit
    comment
    ideal_low
    ideal_high
    ideal_status
    operator_name
    device_serial
  }
}`
)

// Client authenticates with a per-installation token passed as a query
// parameter, which is how the Labcom endpoint wants it.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    baseURL,
		Token:      token,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

func (c *Client) execute(ctx context.Context, query string, variables map[string]any, out any) error {
	payload, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return err
	}

	endpoint := c.BaseURL + "?token=" + url.QueryEscape(c.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("labcom request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("labcom returned status %d", resp.StatusCode)
	}

	var envelope graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("labcom response decode failed: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("labcom query failed: %s", envelope.Errors[0].Message)
	}
	if out != nil && envelope.Data != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("labcom data decode failed: %w", err)
		}
	}
	return nil
}

// GetCloudAccount returns the account the token belongs to, which
// identifies the vessel installation itself.
func (c *Client) GetCloudAccount(ctx context.Context) (*CloudAccount, error) {
	var data struct {
		CloudAccount *CloudAccount `json:"CloudAccount"`
	}
	if err := c.execute(ctx, cloudAccountQuery, nil, &data); err != nil {
		return nil, err
	}
	if data.CloudAccount == nil {
		return nil, fmt.Errorf("labcom returned no CloudAccount")
	}
	return data.CloudAccount, nil
}

// GetAccounts lists the sub-accounts of the installation. Each one maps
// to a sampling point on board.
func (c *Client) GetAccounts(ctx context.Context) ([]Account, error) {
	var data struct {
		Accounts []Account `json:"Accounts"`
	}
	if err := c.execute(ctx, accountsQuery, nil, &data); err != nil {
		return nil, err
	}
	return data.Accounts, nil
}

func (c *Client) GetParameters(ctx context.Context, languageID int) ([]Parameter, error) {
	variables := map[string]any{"languageId": languageID}
	var data struct {
		Parameters []Parameter `json:"Parameters"`
	}
	if err := c.execute(ctx, parametersQuery, variables, &data); err != nil {
		return nil, err
	}
	return data.Parameters, nil
}

// GetMeasurements fetches the raw test results of the given sub-accounts
// within [from, to]. parameterName is an optional server-side filter.
func (c *Client) GetMeasurements(ctx context.Context, accountIDs []int, from, to time.Time, parameterName string) ([]Measurement, error) {
	variables := map[string]any{
		"accountId": accountIDs,
		"from":      from.Unix(),
		"to":        to.Unix(),
	}
	if strings.TrimSpace(parameterName) != "" {
		variables["parameterName"] = parameterName
	}

	var data struct {
		Measurements []Measurement `json:"Measurements"`
	}
	if err := c.execute(ctx, measurementsQuery, variables, &data); err != nil {
		return nil, err
	}
	return data.Measurements, nil
}
