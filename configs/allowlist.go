package config

// DefaultAllowlist is the curated set of metrics whose integrations are
// expected to always have monitor coverage. It is used when the config file
// does not define agent.allowlist.
var DefaultAllowlist = []string{
	"aws.apigateway.5xx",
	"aws.apigateway.latency",
	"aws.applicationelb.healthy_host_count",
	"aws.dynamodb.successful_request_latency",
	"aws.dynamodb.system_errors",
	"aws.dx",
	"aws.elb",
	"aws.lambda.throttles",
	"aws.networkelb.healthy_host_count",
	"aws.rds.database_connections",
	"aws.rds.cpuutilization",
	"aws.rds.free_storage_space",
	"aws.vpn.tunnel_state",
	"azure.dbforpostgresql_servergroupsv2.cpu_percent",
	"azure.network_virtualnetworkgateways.bgp_peer_status",
	"azure.datafactory_factories.pipeline_failed_runs",
	"azure.functions.http4xx",
	"azure.functions.http5xx",
	"azure.logic_workflows.runs_failed",
	"azure.netapp_netappaccounts_capacitypools_volumes.volume_logical_size",
	"azure.network_applicationgateways.healthy_host_count",
	"azure.network_applicationgateways.response_status",
	"azure.network_loadbalancers.backend_pool_host_count",
	"azure.network_loadbalancers.health_probe_status",
	"azure.network_loadbalancers.status",
	"azure.recoveryservices_vaults.backup_health_event",
	"gcp.router.bgp.session_up",
	"gcp.file.nfs.server.used_bytes_percent",
	"gcp.interconnect.network.attachment.received_packets_count",
	"gcp.loadbalancing.https.backend_latencies",
	"gcp.loadbalancing.https.backend_request_bytes_count",
	"gcp.loadbalancing.https.backend_response_bytes_count",
	"gcp.loadbalancing.https.backend_request_count",
	"gcp.loadbalancing.https.total_latencies.p99",
	"gcp.loadbalancing.https.request_bytes_count",
	"gcp.loadbalancing.https.response_bytes_count",
	"gcp.loadbalancing.https.request_count",
	"custom_check.gcp_ilb_healthy_hosts.healthy_percentage",
	"custom_check.gcp_compute_snapshot.failed_snapshots",
	"custom_check.gcp_compute_snapshot.missing_snapshots",
	"custom_check.gcp_compute_snapshot.no_existing_snapshots",
	"custom_check.gcp_compute_snapshot.snapshot_zone_ops_errors",
	"custom_check.gcp_compute_snapshot.snapshot_zone_ops_warnings",
	"gcp.spanner.instance.cpu.utilization",
	"gcp.spanner.query_stat.total.failed_execution_count",
	"gcp.spanner.api.request_latencies.avg",
	"gcp.vpn.tunnel_established",
	"iis.app_pool_up",
	"kubernetes.containers.restarts",
	"kubernetes_state.deployment.replicas_desired",
	"kubernetes_state.node.disk_pressure",
	"kubernetes_state.pod.status_phase",
	"kubernetes_state.statefulset.replicas_desired",
	"kubernetes_state.node.memory_pressure",
	"kubernetes_state.node.status",
	"kubernetes_state.container.status_report.count.waiting",
	"kubernetes_state.pod.unschedulable",
	"sftp.can_connect",
	"ssh.can_connect",
	"w3svc",
	"nagios",
	"network.ping.can_connect",
	"network.http.response_time",
	"rabbitmq.aliveness",
	"rabbitmq.node.disk_alarm",
	"rabbitmq.node.mem_alarm",
	"rabbitmq.status",
	"snmp.can_check",
	"snmp.ifOperStatus",
	"snmp.ifHCInOctets.rate",
	"synthetics.http.response.time",
	"http.ssl_cert",
	"http.ssl.days_left",
	"tcp.can_connect",
	"system.cpu",
	"system.disk",
	"kafka.consumer_lag_seconds",
	"system.mem",
	"system.uptime",
	"vsphere.disk",
	"vsphere.disk.provisioned.latest",
	"vsphere.disk.used.latest",
	"vsphere.disk.maxTotalLatency.latest",
	"vsphere.sys.uptime.latest",
}
