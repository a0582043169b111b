/*
Package risk classifies transactions for fraud.

A Classifier is picked once at startup by NewClassifier:

  - HeuristicClassifier is used when no classifier credential is configured.
    It flags amounts above 5000 and resolves after a simulated delay so callers
    see the same latency profile on every path.
  - RemoteClassifier describes the transaction to an LLM through a
    ContentGenerator, asks for a structured JSON answer and converts the
    untyped payload into a models.RiskPrediction with explicit defaults.

Classify never fails. Transport or parse errors resolve into a fallback
prediction chosen by the failure policy:

	FailOpen   not fraud, LOW, "AI Analysis unavailable due to connection error."
	FailClosed fraud, HIGH, held for manual review

FailOpen is the default and lets transactions through while the classifier is
down. Deployments that prefer to stop traffic set FAIL_POLICY=closed.
*/
package risk
