package cloud

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/cenkalti/backoff/v4"

	"github.com/fleetscaler/fleetscaler/models"
	"github.com/fleetscaler/fleetscaler/routes"
)

const describeRetryCount = 2

// ProvisionerClient talks JSON over HTTP to the external provisioning
// engine. It implements MetricSource, FleetAPI and CapacityPublisher.
// Reads are retried with exponential backoff; mutations are sent once and
// left to the next reconcile cycle on failure.
type ProvisionerClient struct {
	logger     lager.Logger
	baseURL    string
	httpClient *http.Client
}

func NewProvisionerClient(logger lager.Logger, baseURL string, httpClient *http.Client) *ProvisionerClient {
	return &ProvisionerClient{
		logger:     logger.Session("provisioner-client"),
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *ProvisionerClient) DescribeFleet(fleetId string) (*models.FleetState, error) {
	path, err := routes.ProvisionerRoutes().Get(routes.ProvisionerFleetRouteName).URLPath("fleetid", fleetId)
	if err != nil {
		return nil, fmt.Errorf("failed to build describe-fleet path for %s: %w", fleetId, err)
	}

	state := &models.FleetState{}
	err = c.getJSONWithRetry(c.baseURL+path.Path, state)
	if err != nil {
		c.logger.Error("describe-fleet", err, lager.Data{"fleetId": fleetId})
		return nil, err
	}
	return state, nil
}

func (c *ProvisionerClient) ResizeFleet(fleetId string, target int) error {
	path, err := routes.ProvisionerRoutes().Get(routes.ProvisionerResizeRouteName).URLPath("fleetid", fleetId)
	if err != nil {
		return fmt.Errorf("failed to build resize path for %s: %w", fleetId, err)
	}

	body, err := json.Marshal(struct {
		Target int `json:"target"`
	}{Target: target})
	if err != nil {
		return err
	}
	return c.send(http.MethodPut, c.baseURL+path.Path, body)
}

func (c *ProvisionerClient) LaunchInstances(fleetId string, spec models.LaunchSpec, count int) error {
	path, err := routes.ProvisionerRoutes().Get(routes.ProvisionerLaunchRouteName).URLPath("fleetid", fleetId)
	if err != nil {
		return fmt.Errorf("failed to build launch path for %s: %w", fleetId, err)
	}

	body, err := json.Marshal(struct {
		LaunchSpec models.LaunchSpec `json:"launch_spec"`
		Count      int               `json:"count"`
	}{LaunchSpec: spec, Count: count})
	if err != nil {
		return err
	}
	return c.send(http.MethodPost, c.baseURL+path.Path, body)
}

func (c *ProvisionerClient) TerminateInstance(fleetId string, instanceId string) error {
	path, err := routes.ProvisionerRoutes().Get(routes.ProvisionerTerminateRouteName).URLPath("fleetid", fleetId, "instanceid", instanceId)
	if err != nil {
		return fmt.Errorf("failed to build terminate path for %s/%s: %w", fleetId, instanceId, err)
	}
	return c.send(http.MethodDelete, c.baseURL+path.Path, nil)
}

func (c *ProvisionerClient) ReplaceInstance(fleetId string, instanceId string) error {
	path, err := routes.ProvisionerRoutes().Get(routes.ProvisionerReplaceRouteName).URLPath("fleetid", fleetId, "instanceid", instanceId)
	if err != nil {
		return fmt.Errorf("failed to build replace path for %s/%s: %w", fleetId, instanceId, err)
	}
	return c.send(http.MethodPost, c.baseURL+path.Path, nil)
}

func (c *ProvisionerClient) SetCapacity(fleetId string, target int) error {
	path, err := routes.ProvisionerRoutes().Get(routes.ProvisionerSetCapacityRouteName).URLPath("fleetid", fleetId)
	if err != nil {
		return fmt.Errorf("failed to build capacity path for %s: %w", fleetId, err)
	}

	body, err := json.Marshal(struct {
		Target int `json:"target"`
	}{Target: target})
	if err != nil {
		return err
	}
	return c.send(http.MethodPut, c.baseURL+path.Path, body)
}

func (c *ProvisionerClient) GetMetric(fleetId string, metricKind string, start int64, end int64) ([]*models.FleetMetric, error) {
	path, err := routes.ProvisionerRoutes().Get(routes.ProvisionerGetMetricRouteName).URLPath("fleetid", fleetId, "metrickind", metricKind)
	if err != nil {
		return nil, fmt.Errorf("failed to build metric path for %s: %w", fleetId, err)
	}

	parameters := url.Values{}
	parameters.Set("start", strconv.FormatInt(start, 10))
	parameters.Set("end", strconv.FormatInt(end, 10))

	metrics := []*models.FleetMetric{}
	err = c.getJSONWithRetry(c.baseURL+path.Path+"?"+parameters.Encode(), &metrics)
	if err != nil {
		c.logger.Error("get-metric", err, lager.Data{"fleetId": fleetId, "metricKind": metricKind})
		return nil, err
	}
	return metrics, nil
}

func (c *ProvisionerClient) getJSONWithRetry(url string, result interface{}) error {
	operation := func() error {
		resp, err := c.httpClient.Get(url)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("got %d from %s", resp.StatusCode, url)
		}
		return json.NewDecoder(resp.Body).Decode(result)
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 100 * time.Millisecond
	expBackoff.MaxElapsedTime = 0
	return backoff.Retry(operation, backoff.WithMaxRetries(expBackoff, describeRetryCount))
}

func (c *ProvisionerClient) send(method string, url string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("got %d from %s %s: %s", resp.StatusCode, method, url, string(respBody))
	}
	return nil
}
