package catalog

import "github.com/matzehuels/archdiagram/pkg/diagram"

// declareReactAWS declares a React frontend served through CloudFront and
// backed by an API Gateway + Lambda stack with its CI/CD pipeline.
func declareReactAWS(b *diagram.Builder) error {
	d := &declarer{b: b}

	reactUI := d.node("react_ui", "React + MUI", diagram.CategoryFramework)
	zustand := d.node("zustand", "Zustand Slices", diagram.CategoryBlank)
	msalAuth := d.node("msal_auth", "MSAL (Microsoft Entra ID)", diagram.CategoryIdentity)
	d.cluster("frontend", "Frontend", reactUI, zustand, msalAuth)

	devPanel := d.node("dev_panel", "Dev Panel / Mocking (MSW)", diagram.CategoryBlank)

	apiGateway := d.node("api_gateway", "API Gateway", diagram.CategoryNetwork)
	lambdaFn := d.node("lambda_fn", "Lambda (Kotlin JVM 11)", diagram.CategoryCompute)
	s3 := d.node("s3", "S3 for files", diagram.CategoryStorage)
	opensearch := d.node("opensearch", "OpenSearch Logs", diagram.CategoryAnalytics)
	d.cluster("aws_lambda_api", "AWS Lambda API", apiGateway, lambdaFn, s3, opensearch)

	gitlab := d.node("gitlab", "GitLab CI", diagram.CategoryCI)
	deploy := d.node("deploy", "Terraform Deploy", diagram.CategoryDevtools)
	logs := d.node("logs", "CloudWatch", diagram.CategoryMonitoring)
	d.cluster("cicd_monitoring", "CI/CD & Monitoring", gitlab, deploy, logs)

	cdn := d.node("cdn", "CloudFront", diagram.CategoryCDN)

	d.chain(group(reactUI), group(zustand), group(msalAuth, devPanel), group(apiGateway))
	d.connect(apiGateway, lambdaFn)
	d.connect(lambdaFn, s3, opensearch, logs)
	d.chain(group(gitlab), group(deploy), group(lambdaFn))
	d.chain(group(reactUI), group(cdn), group(apiGateway))

	return d.err
}
